package corpus

// SourceTypeValue represents the type discriminator for corpus sources.
type SourceTypeValue string

const (
	// SourceTypeFile indicates a local corpus document file.
	SourceTypeFile SourceTypeValue = "file"

	// SourceTypeWeb indicates a web URL source.
	SourceTypeWeb SourceTypeValue = "web"
)

// SourceStatusType represents the ingestion status of a source.
type SourceStatusType string

const (
	// SourceStatusPending indicates the source is queued for ingestion.
	SourceStatusPending SourceStatusType = "pending"

	// SourceStatusIngesting indicates the source is being processed.
	SourceStatusIngesting SourceStatusType = "ingesting"

	// SourceStatusReady indicates the source is fully ingested.
	SourceStatusReady SourceStatusType = "ready"

	// SourceStatusError indicates ingestion failed.
	SourceStatusError SourceStatusType = "error"

	// SourceStatusStale indicates the file changed since last ingestion.
	SourceStatusStale SourceStatusType = "stale"
)

// DiagramKindType represents the flavor of a fenced diagram block.
type DiagramKindType string

const (
	// DiagramKindMermaid is a mermaid flowchart definition.
	DiagramKindMermaid DiagramKindType = "mermaid"

	// DiagramKindDot is a Graphviz dot definition.
	DiagramKindDot DiagramKindType = "dot"

	// DiagramKindText is a plain-text flow description.
	DiagramKindText DiagramKindType = "text"
)
