package schema

func Int32[T any](number uint32, name string, get func(*T) **int32) Field[T] {
	return newOptional(number, name, int32Codec, get)
}

func Int64[T any](number uint32, name string, get func(*T) **int64) Field[T] {
	return newOptional(number, name, int64Codec, get)
}

func Uint32[T any](number uint32, name string, get func(*T) **uint32) Field[T] {
	return newOptional(number, name, uint32Codec, get)
}

func Uint64[T any](number uint32, name string, get func(*T) **uint64) Field[T] {
	return newOptional(number, name, uint64Codec, get)
}

// Sint32 is an int32 carried as a zigzag varint.
func Sint32[T any](number uint32, name string, get func(*T) **int32) Field[T] {
	return newOptional(number, name, sint32Codec, get)
}

// Sint64 is an int64 carried as a zigzag varint.
func Sint64[T any](number uint32, name string, get func(*T) **int64) Field[T] {
	return newOptional(number, name, sint64Codec, get)
}

func Bool[T any](number uint32, name string, get func(*T) **bool) Field[T] {
	return newOptional(number, name, boolCodec, get)
}

func Float[T any](number uint32, name string, get func(*T) **float32) Field[T] {
	return newOptional(number, name, floatCodec, get)
}

func Double[T any](number uint32, name string, get func(*T) **float64) Field[T] {
	return newOptional(number, name, doubleCodec, get)
}

func String[T any](number uint32, name string, get func(*T) **string) Field[T] {
	return newOptional(number, name, stringCodec, get)
}

func Bytes[T any](number uint32, name string, get func(*T) *[]byte) Field[T] {
	return bytesField[T]{
		info: Info{Number: number, Name: name, Kind: KindBytes, WireType: KindBytes.WireType()},
		get:  get,
	}
}

// Strings is a repeated string field, one tag per element.
func Strings[T any](number uint32, name string, get func(*T) *[]string) Field[T] {
	return newRepeated(number, name, stringCodec, get)
}

// Int32s is a repeated int32 field. It is written unpacked and read in
// either form.
func Int32s[T any](number uint32, name string, get func(*T) *[]int32) Field[T] {
	return newRepeated(number, name, int32Codec, get)
}

// Floats is a repeated float field. It is written unpacked and read in
// either form.
func Floats[T any](number uint32, name string, get func(*T) *[]float32) Field[T] {
	return newRepeated(number, name, floatCodec, get)
}

func Message[T, N any](number uint32, name string, sub *Schema[N], get func(*T) **N) Field[T] {
	return message[T, N]{
		info: Info{Number: number, Name: name, Kind: KindMessage, WireType: KindMessage.WireType(), Message: sub.Name()},
		sub:  sub,
		get:  get,
	}
}

func Messages[T, N any](number uint32, name string, sub *Schema[N], get func(*T) *[]*N) Field[T] {
	return messages[T, N]{
		info: Info{Number: number, Name: name, Kind: KindMessage, WireType: KindMessage.WireType(), Repeated: true, Message: sub.Name()},
		sub:  sub,
		get:  get,
	}
}

// StringMap is a map<string,string> field.
func StringMap[T any](number uint32, name string, get func(*T) *map[string]string) Field[T] {
	return stringMap[T]{
		info: Info{Number: number, Name: name, Kind: KindMap, WireType: KindMap.WireType(), Repeated: true},
		get:  get,
	}
}
