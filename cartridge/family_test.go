package cartridge

import (
	"reflect"
	"testing"
)

func TestFamilyOfEveryByte(t *testing.T) {
	for i := 0; i <= 0xFF; i++ {
		m := Mapper(i)
		want := FamilyMBC2Plus
		if i < 5 {
			want = FamilyMBC1
		}
		if got := FamilyOf(m); got != want {
			t.Errorf("FamilyOf(0x%02X) = %v, want %v", i, got, want)
		}
	}
}

func TestBankWritesShape(t *testing.T) {
	for i := 0; i <= 0xFF; i++ {
		family := FamilyOf(Mapper(i))
		for _, bank := range []uint16{1, 2, 31, 32, 127, 255, 256, 300, 511} {
			writes := family.BankWrites(bank)

			switch family {
			case FamilyMBC1:
				if len(writes) != 3 {
					t.Fatalf("mapper 0x%02X bank %d: got %d writes, want 3", i, bank, len(writes))
				}
			case FamilyMBC2Plus:
				want := 1
				if bank >= 256 {
					want = 2
				}
				if len(writes) != want {
					t.Fatalf("mapper 0x%02X bank %d: got %d writes, want %d", i, bank, len(writes), want)
				}
			}
		}
	}
}

func TestBankWritesMBC1(t *testing.T) {
	got := FamilyMBC1.BankWrites(0x45) // 0b100_0101
	want := []BankWrite{
		{Address: 0x6000, Value: 0},
		{Address: 0x4000, Value: 0x02},
		{Address: 0x2000, Value: 0x05},
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("BankWrites = %+v, want %+v", got, want)
	}
}

func TestBankWritesMBC2Plus(t *testing.T) {
	tests := []struct {
		bank uint16
		want []BankWrite
	}{
		{
			bank: 3,
			want: []BankWrite{{Address: 0x2100, Value: 3}},
		},
		{
			bank: 255,
			want: []BankWrite{{Address: 0x2100, Value: 255}},
		},
		{
			bank: 257,
			want: []BankWrite{{Address: 0x2100, Value: 1}, {Address: 0x3000, Value: 1}},
		},
	}

	for _, tt := range tests {
		got := FamilyMBC2Plus.BankWrites(tt.bank)
		if !reflect.DeepEqual(got, tt.want) {
			t.Errorf("bank %d: BankWrites = %+v, want %+v", tt.bank, got, tt.want)
		}
	}
}
