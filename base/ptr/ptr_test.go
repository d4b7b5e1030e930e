package ptr

import (
	"testing"

	"github.com/stretchr/testify/suite"
)

type pointerSuite struct {
	suite.Suite
}

func (s *pointerSuite) TestPointer() {
	p1 := Int(123)
	p2 := Int64(891011)
	p3 := Bool(true)

	s.Equal(*p1, int(123))
	s.Equal(*p2, int64(891011))
	s.Equal(*p3, true)
}

func TestReflectSuite(t *testing.T) {
	rs := new(pointerSuite)
	suite.Run(t, rs)
}
