package memory

import "testing"

func TestFlatRAMReadWrite(t *testing.T) {
	r := NewFlatRAM()
	r.Write(0x1234, 0x42)
	if got := r.Read(0x1234); got != 0x42 {
		t.Errorf("Read(1234) = %.2X, want 42", got)
	}
}

func TestFlatRAMPowerOnRandomizes(t *testing.T) {
	r := NewFlatRAM()
	allZero := true
	for _, b := range r.mem {
		if b != 0 {
			allZero = false
			break
		}
	}
	if allZero {
		t.Errorf("PowerOn left RAM all zero; want randomized content")
	}
}

func TestLoadAt(t *testing.T) {
	r := NewFlatRAM()
	r.LoadAt(0x0200, []uint8{0xA9, 0x01, 0x8D, 0x00, 0x03})
	want := []uint8{0xA9, 0x01, 0x8D, 0x00, 0x03}
	for i, b := range want {
		if got := r.Read(uint16(0x0200 + i)); got != b {
			t.Errorf("Read(%.4X) = %.2X, want %.2X", 0x0200+i, got, b)
		}
	}
}

func TestLoadAtWraps(t *testing.T) {
	r := NewFlatRAM()
	r.LoadAt(0xFFFE, []uint8{0x01, 0x02, 0x03})
	if got := r.Read(0xFFFE); got != 0x01 {
		t.Errorf("Read(FFFE) = %.2X, want 01", got)
	}
	if got := r.Read(0xFFFF); got != 0x02 {
		t.Errorf("Read(FFFF) = %.2X, want 02", got)
	}
	if got := r.Read(0x0000); got != 0x03 {
		t.Errorf("Read(0000) = %.2X, want 03 (wrapped)", got)
	}
}
