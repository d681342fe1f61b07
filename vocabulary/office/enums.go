package office

// Type represents a federal office subject to qualification rules.
type Type string

const (
	// TypeRepresentative is a member of the House of Representatives.
	TypeRepresentative Type = "representative"

	// TypeSenator is a member of the Senate.
	TypeSenator Type = "senator"

	// TypePresident is the President of the United States.
	TypePresident Type = "president"

	// TypeVicePresident is the Vice President of the United States.
	TypeVicePresident Type = "vice_president"
)

// Chamber represents a legislative chamber of Congress.
type Chamber string

const (
	// ChamberHouse is the House of Representatives.
	ChamberHouse Chamber = "house"

	// ChamberSenate is the Senate.
	ChamberSenate Chamber = "senate"
)

// Valid reports whether the chamber is one of the known chambers.
func (c Chamber) Valid() bool {
	return c == ChamberHouse || c == ChamberSenate
}
