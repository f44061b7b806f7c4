package fields

// Kind identifies which numeric representation a Number carries
type Kind uint8

const (
	KindInt Kind = iota
	KindFloat
)

func (k Kind) String() string {
	switch k {
	case KindInt:
		return "int"
	case KindFloat:
		return "float"
	default:
		return "unknown"
	}
}

// Numeric is an interface that represents any numeric type accepted as a field value.
type Numeric interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 | ~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 | ~float32 | ~float64
}

// jsonNumber matches decoded JSON number literals (encoding/json and goccy/go-json Number)
type jsonNumber interface {
	Int64() (int64, error)
	Float64() (float64, error)
	String() string
}
