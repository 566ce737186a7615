package occupancy

type SlotKind string

const (
	KindHolder  SlotKind = "HOLDER"
	KindInvited SlotKind = "INVITED"
	KindUnknown SlotKind = "UNKNOWN"
)

func (k SlotKind) String() string {
	return string(k)
}

func (k SlotKind) IsValid() bool {
	switch k {
	case KindHolder, KindInvited, KindUnknown:
		return true
	default:
		return false
	}
}
