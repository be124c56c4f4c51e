package isam

import (
	"strings"
	"testing"
)

func TestReadTriplesOutOfOrderInput(t *testing.T) {
	in := "%triples: (2x2, nnz:2)\n1 1 4.0\n0 0 1.0\n"
	m, err := ReadTriples(strings.NewReader(in))
	if err != nil {
		t.Fatalf("ReadTriples: %v", err)
	}
	if m.Get(0, 0) != 1.0 || m.Get(1, 1) != 4.0 {
		t.Error("ReadTriples did not tolerate non-row-major input order")
	}
}

func TestReadTriplesEmptyInput(t *testing.T) {
	_, err := ReadTriples(strings.NewReader(""))
	if err == nil {
		t.Fatal("ReadTriples on empty input should have returned an error")
	}
}

func TestReadTriplesMalformedHeader(t *testing.T) {
	_, err := ReadTriples(strings.NewReader("not a header\n"))
	if err == nil {
		t.Fatal("ReadTriples with a malformed header should have returned an error")
	}
}

func TestReadTriplesMalformedTriple(t *testing.T) {
	in := "%triples: (1x1, nnz:1)\n0 only-two-fields\n"
	_, err := ReadTriples(strings.NewReader(in))
	if err == nil {
		t.Fatal("ReadTriples with a malformed triple line should have returned an error")
	}
}

func TestReadTriplesOutOfBoundsTriple(t *testing.T) {
	in := "%triples: (1x1, nnz:1)\n5 5 1.0\n"
	_, err := ReadTriples(strings.NewReader(in))
	if err == nil {
		t.Fatal("ReadTriples with an out-of-bounds triple should have returned an error")
	}
}
