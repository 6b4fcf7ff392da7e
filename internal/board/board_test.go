package board

import (
	"errors"
	"testing"
)

func TestStartingPosition(t *testing.T) {
	b := New()

	if got := b.Get(Sq(4, 7)); got != NewPiece(White, King) {
		t.Errorf("Expected White King on (4,7), got %v", got)
	}
	if got := b.Get(Sq(4, 0)); got != NewPiece(Black, King) {
		t.Errorf("Expected Black King on (4,0), got %v", got)
	}

	for x := 0; x < Size; x++ {
		if got := b.Get(Sq(x, 1)); got != NewPiece(Black, Pawn) {
			t.Errorf("Expected Black Pawn on (%d,1), got %v", x, got)
		}
		if got := b.Get(Sq(x, 6)); got != NewPiece(White, Pawn) {
			t.Errorf("Expected White Pawn on (%d,6), got %v", x, got)
		}
		if got := b.Get(Sq(x, 0)).Type; got != backRank[x] {
			t.Errorf("Expected %v on (%d,0), got %v", backRank[x], x, got)
		}
		if got := b.Get(Sq(x, 7)).Type; got != backRank[x] {
			t.Errorf("Expected %v on (%d,7), got %v", backRank[x], x, got)
		}
		for y := 2; y <= 5; y++ {
			if !b.IsEmpty(Sq(x, y)) {
				t.Errorf("Expected (%d,%d) to be empty", x, y)
			}
		}
	}

	if b.Turn() != White {
		t.Errorf("Expected White to move, got %v", b.Turn())
	}
	if b.HasSelection() {
		t.Errorf("Expected no selection, got %v", b.Selected())
	}
	if len(b.Highlights()) != 0 {
		t.Errorf("Expected no highlights, got %v", b.Highlights())
	}
	if b.Count(White) != 16 || b.Count(Black) != 16 {
		t.Errorf("Expected 16 pieces per side, got %d/%d", b.Count(White), b.Count(Black))
	}
	if got := b.Placement(); got != StartPlacement {
		t.Errorf("Placement = %q, want %q", got, StartPlacement)
	}
}

func TestOutOfRangeSquares(t *testing.T) {
	b := New()
	for x := 0; x < Size; x++ {
		for y := 0; y < Size; y++ {
			b.SetHighlight(Sq(x, y), true)
		}
	}

	outside := []Square{
		Sq(-1, 0), Sq(0, -1), Sq(8, 0), Sq(0, 8),
		Sq(-5, -5), Sq(100, 3), Sq(3, 100), NoSquare,
	}
	for _, sq := range outside {
		t.Run(sq.String(), func(t *testing.T) {
			if got := b.Get(sq); !got.IsEmpty() {
				t.Errorf("Get(%v) = %v, want empty", sq, got)
			}
			if b.Highlight(sq) {
				t.Errorf("Highlight(%v) = true, want false", sq)
			}

			before := b.Copy()
			b.Set(sq, White, Queen)
			b.SetHighlight(sq, false)
			if *b != *before {
				t.Errorf("writes to %v changed the board", sq)
			}
		})
	}
}

func TestSetAndClear(t *testing.T) {
	b := NewEmpty()
	sq := Sq(3, 4)

	b.Set(sq, Black, Knight)
	if got := b.Get(sq); got != NewPiece(Black, Knight) {
		t.Fatalf("Get after Set = %v", got)
	}

	b.Set(sq, White, Rook)
	if got := b.Get(sq); got != NewPiece(White, Rook) {
		t.Errorf("Set should overwrite, got %v", got)
	}

	b.Set(sq, White, NoType)
	if !b.IsEmpty(sq) {
		t.Errorf("Set with NoType should empty the square, got %v", b.Get(sq))
	}

	b.Set(sq, NoTeam, Queen)
	if !b.IsEmpty(sq) {
		t.Errorf("Set with NoTeam should empty the square, got %v", b.Get(sq))
	}

	b.Put(sq, NewPiece(Black, Queen))
	b.Clear(sq)
	if !b.IsEmpty(sq) {
		t.Errorf("Clear left %v", b.Get(sq))
	}
}

func TestHighlights(t *testing.T) {
	b := NewEmpty()
	b.SetHighlight(Sq(2, 3), true)
	b.SetHighlight(Sq(0, 0), true)
	b.SetHighlight(Sq(7, 7), true)

	want := []Square{Sq(0, 0), Sq(2, 3), Sq(7, 7)}
	got := b.Highlights()
	if len(got) != len(want) {
		t.Fatalf("Highlights() = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Highlights()[%d] = %v, want %v", i, got[i], want[i])
		}
	}

	b.ClearHighlights()
	if len(b.Highlights()) != 0 {
		t.Errorf("ClearHighlights left %v", b.Highlights())
	}
}

func TestSelectionAndHover(t *testing.T) {
	b := New()

	b.SetHighlight(Sq(4, 5), true)
	b.Select(Sq(4, 6))
	if b.Selected() != Sq(4, 6) || !b.HasSelection() {
		t.Fatalf("Select did not stick: %v", b.Selected())
	}

	b.Deselect()
	if b.HasSelection() {
		t.Errorf("Deselect kept %v", b.Selected())
	}
	if b.Highlight(Sq(4, 5)) {
		t.Errorf("Deselect should clear highlights")
	}

	b.Select(Sq(9, 9))
	if b.HasSelection() {
		t.Errorf("Selecting off the board should not select, got %v", b.Selected())
	}

	b.SetHover(Sq(12, -3))
	if b.Hover() != Sq(7, 0) {
		t.Errorf("SetHover should clamp, got %v", b.Hover())
	}
}

func TestMoveAndTurn(t *testing.T) {
	b := New()

	captured := b.Move(Sq(0, 6), Sq(0, 1))
	if captured != NewPiece(Black, Pawn) {
		t.Errorf("Expected to capture Black Pawn, got %v", captured)
	}
	if !b.IsEmpty(Sq(0, 6)) {
		t.Errorf("Origin not emptied")
	}
	if b.Get(Sq(0, 1)) != NewPiece(White, Pawn) {
		t.Errorf("Destination holds %v", b.Get(Sq(0, 1)))
	}

	if got := b.Move(Sq(0, 7), Sq(0, 8)); !got.IsEmpty() {
		t.Errorf("Off-board move captured %v", got)
	}
	if b.Get(Sq(0, 7)) != NewPiece(White, Rook) {
		t.Errorf("Off-board move should be a no-op")
	}

	b.PassTurn()
	if b.Turn() != Black {
		t.Errorf("Expected Black after PassTurn, got %v", b.Turn())
	}
	b.PassTurn()
	if b.Turn() != White {
		t.Errorf("Expected White after second PassTurn, got %v", b.Turn())
	}

	b.SetTurn(NoTeam)
	if b.Turn() != White {
		t.Errorf("SetTurn(NoTeam) should be ignored, got %v", b.Turn())
	}
}

func TestPieceEncoding(t *testing.T) {
	for _, team := range []Team{White, Black} {
		for pt := Pawn; pt <= King; pt++ {
			p := NewPiece(team, pt)
			v := p.Byte()
			if v>>4 != byte(team) || v&0x0f != byte(pt) {
				t.Errorf("%v packs to 0x%02x", p, v)
			}
			back, ok := PieceFromByte(v)
			if !ok || back != p {
				t.Errorf("PieceFromByte(0x%02x) = %v, %v", v, back, ok)
			}
		}
	}

	if NoPiece.Byte() != 0 {
		t.Errorf("NoPiece packs to 0x%02x", NoPiece.Byte())
	}

	invalid := []byte{0x01, 0x10, 0x17, 0x30, 0x31, 0xff, 0x07, 0x20}
	for _, v := range invalid {
		if _, ok := PieceFromByte(v); ok {
			t.Errorf("PieceFromByte(0x%02x) should be invalid", v)
		}
	}
}

func TestAssetName(t *testing.T) {
	team, kind := NewPiece(White, Pawn).AssetName()
	if team != "white" || kind != "pawn" {
		t.Errorf("AssetName = (%q, %q)", team, kind)
	}
	team, kind = NewPiece(Black, Knight).AssetName()
	if team != "black" || kind != "knight" {
		t.Errorf("AssetName = (%q, %q)", team, kind)
	}
	team, kind = NoPiece.AssetName()
	if team != "" || kind != "" {
		t.Errorf("NoPiece AssetName = (%q, %q)", team, kind)
	}
}

func TestPlacementRoundTrip(t *testing.T) {
	placements := []string{
		StartPlacement,
		"8/8/8/8/8/8/8/8 w",
		"r3k2r/8/8/3N4/8/8/8/R3K2R b",
		"k7/8/8/8/8/8/8/7K w",
	}
	for _, s := range placements {
		b, err := ParsePlacement(s)
		if err != nil {
			t.Errorf("ParsePlacement(%q): %v", s, err)
			continue
		}
		if got := b.Placement(); got != s {
			t.Errorf("Placement() = %q, want %q", got, s)
		}
	}
}

func TestParsePlacementErrors(t *testing.T) {
	bad := []string{
		"",
		"8/8/8/8/8/8/8 w",
		"9/8/8/8/8/8/8/8 w",
		"8/8/8/8/8/8/8/7 w",
		"8/8/8/8/8/8/8/8x w",
		"8/8/8/8/8/8/8/8 x",
		"8/8/8/8/8/8/8/8 w extra",
	}
	for _, s := range bad {
		if _, err := ParsePlacement(s); err == nil {
			t.Errorf("ParsePlacement(%q) should fail", s)
		}
	}
}

func TestEncodeDecode(t *testing.T) {
	b := MustParsePlacement("r3k2r/8/8/3N4/8/8/8/R3K2R b")
	b.Select(Sq(3, 3))
	b.GenerateMoves(Sq(3, 3))

	restored, err := Decode(b.Encode(), b.Turn())
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if restored.Placement() != b.Placement() {
		t.Errorf("Decode gave %q, want %q", restored.Placement(), b.Placement())
	}
	if restored.HasSelection() || len(restored.Highlights()) != 0 {
		t.Errorf("Decode should not restore transient state")
	}

	t.Run("WrongLength", func(t *testing.T) {
		_, err := Decode(make([]byte, 10), White)
		if !errors.Is(err, ErrInvalidEncoding) {
			t.Errorf("Expected ErrInvalidEncoding, got %v", err)
		}
	})

	t.Run("BadCell", func(t *testing.T) {
		cells := b.Encode()
		cells[17] = 0x37
		_, err := Decode(cells, White)
		if !errors.Is(err, ErrInvalidEncoding) {
			t.Errorf("Expected ErrInvalidEncoding, got %v", err)
		}
	})

	t.Run("BadTurn", func(t *testing.T) {
		_, err := Decode(b.Encode(), NoTeam)
		if !errors.Is(err, ErrInvalidEncoding) {
			t.Errorf("Expected ErrInvalidEncoding, got %v", err)
		}
	})
}

func TestSquareNotation(t *testing.T) {
	tests := []struct {
		sq   Square
		want string
	}{
		{Sq(0, 7), "a1"},
		{Sq(4, 6), "e2"},
		{Sq(4, 4), "e4"},
		{Sq(7, 0), "h8"},
		{NoSquare, "-"},
	}
	for _, tt := range tests {
		if got := tt.sq.String(); got != tt.want {
			t.Errorf("%#v.String() = %q, want %q", tt.sq, got, tt.want)
		}
		if tt.sq == NoSquare {
			continue
		}
		back, err := ParseSquare(tt.want)
		if err != nil || back != tt.sq {
			t.Errorf("ParseSquare(%q) = %v, %v", tt.want, back, err)
		}
	}

	if _, err := ParseSquare("i9"); err == nil {
		t.Errorf("ParseSquare(i9) should fail")
	}
	if SquareFromIndex(64) != NoSquare || SquareFromIndex(-1) != NoSquare {
		t.Errorf("SquareFromIndex out of range should give NoSquare")
	}
	if SquareFromIndex(Sq(5, 3).Index()) != Sq(5, 3) {
		t.Errorf("Index/SquareFromIndex mismatch")
	}
}
