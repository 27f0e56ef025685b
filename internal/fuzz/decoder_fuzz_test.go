package fuzztests

import (
	"testing"

	"pyfront/internal/astjson"
	"pyfront/internal/convert"
	"pyfront/internal/diag"
)

func FuzzDecodeModule(f *testing.F) {
	addDumpSeeds(f)
	f.Fuzz(func(_ *testing.T, input []byte) {
		if len(input) > maxFuzzInput {
			input = input[:maxFuzzInput]
		}
		mod, err := astjson.DecodeModule(input)
		if err != nil {
			return
		}
		// A decodable tree must always convert without panicking.
		_, _ = convert.Module(mod, convert.Options{Reporter: diag.NopReporter{}})
	})
}
