package product

import "go.mongodb.org/mongo-driver/bson/primitive"

// IDKind tells which identifier space a product id belongs to.
type IDKind int

const (
	// SampleID is any id that is not a store id; only the sample catalog can hold it.
	SampleID IDKind = iota
	// NativeID is a 24-hex ObjectID assigned by the store.
	NativeID
)

func (k IDKind) String() string {
	if k == NativeID {
		return "native"
	}
	return "sample"
}

// ID is a product identifier resolved to its kind once, at the edge.
type ID struct {
	Kind   IDKind
	Raw    string
	Native primitive.ObjectID
}

// ParseID classifies raw.
func ParseID(raw string) ID {
	if oid, err := primitive.ObjectIDFromHex(raw); err == nil {
		return ID{Kind: NativeID, Raw: raw, Native: oid}
	}
	return ID{Kind: SampleID, Raw: raw}
}
