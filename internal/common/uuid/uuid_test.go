package uuid

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
)

type UUIDTestSuite struct {
	suite.Suite
	generator *DefaultGenerator
}

func (s *UUIDTestSuite) SetupTest() {
	s.generator = New()
}

func TestUUIDTestSuite(t *testing.T) {
	suite.Run(t, new(UUIDTestSuite))
}

func (s *UUIDTestSuite) TestNewIDIsUnique() {
	first := s.generator.NewID()
	second := s.generator.NewID()

	s.NotEqual(first, second)
	_, err := uuid.Parse(first)
	s.NoError(err)
}

func (s *UUIDTestSuite) TestShort() {
	s.Equal("123e4567", Short("123e4567-e89b-12d3-a456-426614174000"))
	s.Equal("not-a-uu", Short("not-a-uuid"))
	s.Equal("abc", Short("abc"))
}
