package platform

// DataModel is one of the four standard C ABI width combinations. It fixes
// the widths of the int, long, long long, and pointer types.
type DataModel uint8

const (
	// ILP32 sets int, long, long long, and pointer types to 32-bit.
	ILP32 DataModel = iota
	// ILP64 sets int, long, long long, and pointer types to 64-bit.
	ILP64
	// LLP64 sets int and long types to 32-bit, and, long long and pointer
	// types to 64-bit.
	LLP64
	// LP64 sets int types to 32-bit, and, long, long long, and pointer
	// types to 64-bit.
	LP64
)

type dataModelWidths struct {
	intModel   IntegerModel
	longModel  IntegerModel
	llongModel IntegerModel
	ptrModel   IntegerModel
}

// The four valid width combinations, indexed by DataModel.
var dataModels = [...]dataModelWidths{
	ILP32: {Bit32, Bit32, Bit32, Bit32},
	ILP64: {Bit64, Bit64, Bit64, Bit64},
	LLP64: {Bit32, Bit32, Bit64, Bit64},
	LP64:  {Bit32, Bit64, Bit64, Bit64},
}

var dataModelNames = [...]string{
	ILP32: "ILP32",
	ILP64: "ILP64",
	LLP64: "LLP64",
	LP64:  "LP64",
}

// IntModel returns the integer model of int types.
func (d DataModel) IntModel() IntegerModel {
	return dataModels[d].intModel
}

// LongModel returns the integer model of long types.
func (d DataModel) LongModel() IntegerModel {
	return dataModels[d].longModel
}

// LLongModel returns the integer model of long long types.
func (d DataModel) LLongModel() IntegerModel {
	return dataModels[d].llongModel
}

// PointerModel returns the integer model of pointer types.
func (d DataModel) PointerModel() IntegerModel {
	return dataModels[d].ptrModel
}

// String returns the conventional data model name, e.g. "LP64".
func (d DataModel) String() string {
	return dataModelNames[d]
}

// MarshalText implements encoding.TextMarshaler.
func (d DataModel) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

// MarshalYAML implements yaml.Marshaler.
func (d DataModel) MarshalYAML() (interface{}, error) {
	return d.String(), nil
}
