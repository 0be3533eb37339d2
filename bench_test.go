package chomp

import (
	"bytes"
	"testing"
)

func BenchmarkTag(b *testing.B) {
	p := TagString("content-length")
	in := []byte("content-length: 42\r\n")
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		if _, _, err := p(in); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkDigitRun(b *testing.B) {
	in := append(bytes.Repeat([]byte("7"), 1024), ';')
	b.ReportAllocs()
	b.SetBytes(int64(len(in)))
	for i := 0; i < b.N; i++ {
		if _, _, err := Digit1(in); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkSeparatedList(b *testing.B) {
	p := SeparatedList0(TagString(","), Digit1)
	in := append(bytes.Repeat([]byte("123,"), 256), ';')
	b.ReportAllocs()
	b.SetBytes(int64(len(in)))
	for i := 0; i < b.N; i++ {
		if _, _, err := p(in); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkKeyValueLine(b *testing.B) {
	line := Terminated(
		SeparatedPair(TakeTill(func(c byte) bool { return c == ':' }), TagString(": "), TakeUntil([]byte("\r\n"))),
		TagString("\r\n"),
	)
	in := []byte("content-type: text/plain; charset=utf-8\r\n")
	b.ReportAllocs()
	b.SetBytes(int64(len(in)))
	for i := 0; i < b.N; i++ {
		if _, _, err := line(in); err != nil {
			b.Fatal(err)
		}
	}
}
