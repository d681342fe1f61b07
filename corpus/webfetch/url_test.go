package webfetch

import (
	"net"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidateURL(t *testing.T) {
	tests := []struct {
		name    string
		url     string
		wantErr bool
	}{
		{"valid https", "https://www.archives.gov/founding-docs/constitution", false},
		{"http rejected", "http://www.archives.gov/constitution", true},
		{"localhost", "https://localhost/constitution", true},
		{"loopback ip", "https://127.0.0.1/constitution", true},
		{"private ip", "https://192.168.1.10/constitution", true},
		{"cgnat ip", "https://100.64.0.1/constitution", true},
		{"local domain", "https://docs.local/constitution", true},
		{"internal domain", "https://wiki.internal/constitution", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateURL(tt.url)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestIsPrivateIP(t *testing.T) {
	assert.True(t, IsPrivateIP(net.ParseIP("10.0.0.1")))
	assert.True(t, IsPrivateIP(net.ParseIP("172.16.0.1")))
	assert.True(t, IsPrivateIP(net.ParseIP("fe80::1")))
	assert.True(t, IsPrivateIP(net.ParseIP("::ffff:192.168.0.1")))
	assert.False(t, IsPrivateIP(net.ParseIP("93.184.216.34")))
	assert.False(t, IsPrivateIP(net.ParseIP("2001:db8::1")))
}

func TestGenerateEntityID(t *testing.T) {
	id := GenerateEntityID("https://www.archives.gov/founding-docs/constitution-transcript")
	assert.Equal(t, "corpus.web.www-archives-gov-founding-docs-constitution-transcript", id)
	assert.True(t, ValidateEntityID(id))

	// Invalid URLs fall back to a hash-based ID
	id = GenerateEntityID("://not a url")
	assert.True(t, ValidateEntityID(id))
}

func TestValidateEntityID(t *testing.T) {
	assert.True(t, ValidateEntityID("corpus.web.archives-gov"))
	assert.False(t, ValidateEntityID("corpus.web."))
	assert.False(t, ValidateEntityID("corpus.web.UPPER"))
	assert.False(t, ValidateEntityID("source.web.archives-gov"))
	assert.False(t, ValidateEntityID("corpus.web.a.b"))
}

func TestExtractDomain(t *testing.T) {
	assert.Equal(t, "www.archives.gov", ExtractDomain("https://www.archives.gov/constitution"))
	assert.Equal(t, "", ExtractDomain("://broken"))
}
