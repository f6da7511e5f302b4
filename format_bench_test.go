package format

import (
	"testing"
)

type BenchContact struct {
	Callsign  string
	Frequency float64
	Confirmed bool
	Comment   string
}

func benchFormat() *Format {
	return New(BenchContact{},
		Value("callsign"),
		Value("frequency").Number().Min(0),
		Value("confirmed").Boolean(),
		Value("comment").DefaultsTo(""),
	)
}

func benchSource() map[string]any {
	return map[string]any{
		"callsign":  "G0ABC",
		"frequency": 14.074,
		"confirmed": "1",
		"comment":   "FT8",
	}
}

func BenchmarkFormat_Read(b *testing.B) {
	f := benchFormat()
	src := benchSource()

	b.ResetTimer()
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		if _, err := f.Read(src); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkFormat_Write(b *testing.B) {
	f := benchFormat()
	model := &BenchContact{Callsign: "G0ABC", Frequency: 14.074, Confirmed: true, Comment: "FT8"}

	b.ResetTimer()
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		if _, err := f.Write(model); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkFormat_RoundTrip(b *testing.B) {
	f := benchFormat()
	src := benchSource()

	b.ResetTimer()
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		v, err := f.Read(src)
		if err != nil {
			b.Fatal(err)
		}
		if _, err := f.Write(v); err != nil {
			b.Fatal(err)
		}
	}
}
