package entity

// FacePoints число клеток на грани.
const FacePoints = GridSize * GridSize

// FaceCount число граней куба.
const FaceCount = 6

// FaceResult обозначения 9 клеток грани построчно, слева направо.
type FaceResult [FacePoints]Label

func (f FaceResult) String() string {
	b := make([]byte, len(f))
	for i, l := range f {
		b[i] = byte(l)
	}
	return string(b)
}

// CubeResult 54 обозначения: шесть граней в порядке, заданном вызывающим.
type CubeResult []Label

// NewCubeResult склеивает результаты граней.
func NewCubeResult(faces []FaceResult) CubeResult {
	out := make(CubeResult, 0, len(faces)*FacePoints)
	for _, f := range faces {
		out = append(out, f[:]...)
	}
	return out
}

func (c CubeResult) String() string {
	b := make([]byte, len(c))
	for i, l := range c {
		b[i] = byte(l)
	}
	return string(b)
}
