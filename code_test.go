package huffpack

import (
	"testing"
)

func TestCode_String(t *testing.T) {
	type testRow struct {
		hc     Code
		expect string
	}

	testData := [...]testRow{
		{MakeCode(0, 0), `""`},
		{MakeCode(1, 0), `"0"`},
		{MakeCode(1, 1), `"1"`},
		{MakeCode(3, 0x1), `"100"`},
		{MakeCode(4, 0xe), `"0111"`},
	}
	for _, row := range testData {
		actual := row.hc.String()
		if actual != row.expect {
			t.Errorf("wrong string for %#v:\n\texpect: %s\n\tactual: %s", row.hc, row.expect, actual)
		}
	}
}

func TestCode_Append(t *testing.T) {
	var hc Code
	for _, bit := range []uint{1, 0, 1, 1} {
		hc = hc.Append(bit)
	}
	expect := `"1011"`
	if actual := hc.String(); actual != expect {
		t.Errorf("wrong code:\n\texpect: %s\n\tactual: %s", expect, actual)
	}
	if hc.Bit(0) != 1 || hc.Bit(1) != 0 || hc.Size != 4 {
		t.Errorf("wrong bits: %#v", hc)
	}
}

func TestCode_HasPrefix(t *testing.T) {
	hc := MakeCode(0, 0).Append(1).Append(0).Append(1)

	type testRow struct {
		prefix Code
		expect bool
	}

	testData := [...]testRow{
		{MakeCode(0, 0), true},
		{MakeCode(1, 1), true},
		{MakeCode(1, 0), false},
		{MakeCode(2, 0x1), true},
		{MakeCode(2, 0x3), false},
		{hc, true},
		{hc.Append(0), false},
	}
	for _, row := range testData {
		t.Run(row.prefix.String(), func(t *testing.T) {
			if actual := hc.HasPrefix(row.prefix); actual != row.expect {
				t.Errorf("HasPrefix(%s): expected %v, got %v", row.prefix, row.expect, actual)
			}
		})
	}
}
