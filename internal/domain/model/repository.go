package model

// RepositoryType is the type under which instances of this repository are
// registered by the host.
const RepositoryType = "openveo"

// ReturnType is a bit set of the ways a file can be picked from a
// repository. Values match the host's FILE_* constants.
type ReturnType int

const (
	ReturnExternal  ReturnType = 1
	ReturnInternal  ReturnType = 2
	ReturnReference ReturnType = 4
)

func (r ReturnType) Has(flag ReturnType) bool {
	return r&flag == flag
}

// Capabilities describes what the repository offers to the host file
// picker. Videos can only be linked, never copied into the host.
type Capabilities struct {
	SupportedFileTypes   []string
	SupportedReturnTypes ReturnType
	DefaultReturnType    ReturnType
	ContainsPrivateData  bool
	CheckLogin           bool
}

func DefaultCapabilities() Capabilities {
	return Capabilities{
		SupportedFileTypes:   []string{"video"},
		SupportedReturnTypes: ReturnExternal | ReturnReference,
		DefaultReturnType:    ReturnExternal,
		ContainsPrivateData:  false,
		CheckLogin:           false,
	}
}

// PrivacyReason is the string key explaining why no personal data is
// stored.
const PrivacyReason = "privacy:metadata"

// RepositoryInstance is an instance of the repository configured in the
// host.
type RepositoryInstance struct {
	ID        int64
	Name      string
	ContextID int64
}
