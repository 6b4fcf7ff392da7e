package board

// CaptureClass describes what a moving piece may do with an occupied square.
type CaptureClass uint8

const (
	// Blocked: the target belongs to the mover's team.
	Blocked CaptureClass = iota
	// CaptureKing: the target is the opposing king. The square is a legal
	// destination and raises the king-capture signal.
	CaptureKing
	// CaptureNormal: the target is any other opposing piece.
	CaptureNormal
)

// String returns the class name.
func (c CaptureClass) String() string {
	switch c {
	case Blocked:
		return "Blocked"
	case CaptureKing:
		return "CaptureKing"
	case CaptureNormal:
		return "CaptureNormal"
	default:
		return "Unknown"
	}
}

// CanLand reports whether a piece may move onto a square of this class.
func (c CaptureClass) CanLand() bool {
	return c == CaptureKing || c == CaptureNormal
}

// Classify decides how source interacts with an occupied target square.
// Callers check for an empty target first.
func Classify(source, target Piece) CaptureClass {
	if source.Team == target.Team {
		return Blocked
	}
	if target.Type == King {
		return CaptureKing
	}
	return CaptureNormal
}
