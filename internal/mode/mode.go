package mode

type Mode int

const (
	Shared Mode = iota
	Scoped
)

func (m Mode) String() string {
	switch m {
	case Shared:
		return "shared"
	case Scoped:
		return "scoped"
	default:
		return "unknown"
	}
}
