// Package render converts decoded messages between protobuf and the text
// and binary formats offered by the gateway and CLI.
package render

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"reflect"
	"sort"
	"strconv"
	"strings"

	"github.com/fxamacker/cbor/v2"
	"gopkg.in/yaml.v3"
)

type Format string

const (
	Protobuf Format = "protobuf"
	JSON     Format = "json"
	YAML     Format = "yaml"
	CBOR     Format = "cbor"
)

var (
	ErrUnknownFormat = errors.New("render: unknown format")
	// ErrRawProtobuf is returned when protobuf is requested for anything
	// other than already-encoded wire bytes.
	ErrRawProtobuf = errors.New("render: protobuf needs encoded bytes")
)

var mediaTypes = map[Format]string{
	Protobuf: "application/x-protobuf",
	JSON:     "application/json",
	YAML:     "application/yaml",
	CBOR:     "application/cbor",
}

var aliases = map[string]Format{
	"protobuf":               Protobuf,
	"proto":                  Protobuf,
	"pb":                     Protobuf,
	"application/x-protobuf": Protobuf,
	"application/protobuf":   Protobuf,
	"application/grpc":       Protobuf,
	"application/grpc+proto": Protobuf,
	"json":                   JSON,
	"application/json":       JSON,
	"yaml":                   YAML,
	"yml":                    YAML,
	"application/yaml":       YAML,
	"application/x-yaml":     YAML,
	"text/yaml":              YAML,
	"cbor":                   CBOR,
	"application/cbor":       CBOR,
}

var (
	encMode cbor.EncMode
	decMode cbor.DecMode
)

func init() {
	var err error
	encMode, err = cbor.CoreDetEncOptions().EncMode()
	if err != nil {
		panic("render: CBOR encoder initialization failed: " + err.Error())
	}
	decMode, err = cbor.DecOptions{
		DefaultMapType: reflect.TypeOf(map[string]any(nil)),
	}.DecMode()
	if err != nil {
		panic("render: CBOR decoder initialization failed: " + err.Error())
	}
}

// ParseFormat accepts a format name or a media type, with parameters.
func ParseFormat(raw string) (Format, error) {
	key := strings.ToLower(strings.TrimSpace(raw))
	if i := strings.IndexByte(key, ';'); i >= 0 {
		key = strings.TrimSpace(key[:i])
	}
	if f, ok := aliases[key]; ok {
		return f, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownFormat, raw)
}

func (f Format) ContentType() string {
	return mediaTypes[f]
}

func (f Format) String() string { return string(f) }

// FromAccept picks the highest quality supported format listed in an
// Accept header. Ties keep header order; */* and blank headers select
// fallback.
func FromAccept(header string, fallback Format) Format {
	type candidate struct {
		format Format
		q      float64
		pos    int
	}
	var candidates []candidate
	for i, part := range strings.Split(header, ",") {
		fields := strings.Split(part, ";")
		media := strings.ToLower(strings.TrimSpace(fields[0]))
		q := 1.0
		for _, param := range fields[1:] {
			k, v, ok := strings.Cut(strings.TrimSpace(param), "=")
			if ok && strings.TrimSpace(k) == "q" {
				if parsed, err := strconv.ParseFloat(strings.TrimSpace(v), 64); err == nil {
					q = parsed
				}
			}
		}
		if q <= 0 {
			continue
		}
		if media == "*/*" {
			candidates = append(candidates, candidate{fallback, q, i})
			continue
		}
		if f, ok := aliases[media]; ok {
			candidates = append(candidates, candidate{f, q, i})
		}
	}
	if len(candidates) == 0 {
		return fallback
	}
	sort.SliceStable(candidates, func(i, j int) bool {
		return candidates[i].q > candidates[j].q
	})
	return candidates[0].format
}

// Marshal renders v in format. Protobuf output passes encoded wire bytes
// through unchanged.
func Marshal(format Format, v any) ([]byte, error) {
	switch format {
	case Protobuf:
		b, ok := v.([]byte)
		if !ok {
			return nil, fmt.Errorf("%w: got %T", ErrRawProtobuf, v)
		}
		return b, nil
	case JSON:
		return marshalJSON(v)
	case YAML:
		return yaml.Marshal(v)
	case CBOR:
		return encMode.Marshal(v)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownFormat, string(format))
	}
}

// Unmarshal parses data in format into v. JSON rejects unknown keys so a
// misspelled field is not silently dropped.
func Unmarshal(format Format, data []byte, v any) error {
	switch format {
	case Protobuf:
		return ErrRawProtobuf
	case JSON:
		dec := json.NewDecoder(bytes.NewReader(data))
		dec.DisallowUnknownFields()
		return dec.Decode(v)
	case YAML:
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		return dec.Decode(v)
	case CBOR:
		return decMode.Unmarshal(data, v)
	default:
		return fmt.Errorf("%w: %q", ErrUnknownFormat, string(format))
	}
}
