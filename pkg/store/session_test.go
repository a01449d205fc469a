package store

import (
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSessionAppendOrder(t *testing.T) {
	s := NewSession("s1")

	s.Append(RoleUser, "first question")
	s.Append(RoleAssistant, "first answer")
	s.Append(RoleUser, "second question")
	s.Append(RoleAssistant, "second answer")

	turns := s.Turns()
	assert.Equal(t, 4, s.Len())
	assert.Equal(t, Turn{Role: RoleUser, Content: "first question"}, turns[0])
	assert.Equal(t, Turn{Role: RoleAssistant, Content: "first answer"}, turns[1])
	assert.Equal(t, Turn{Role: RoleUser, Content: "second question"}, turns[2])
	assert.Equal(t, Turn{Role: RoleAssistant, Content: "second answer"}, turns[3])
}

func TestSessionTurnsReturnsCopy(t *testing.T) {
	s := NewSession("s1")
	s.Append(RoleUser, "hello")

	turns := s.Turns()
	turns[0].Content = "mutated"

	assert.Equal(t, "hello", s.Turns()[0].Content)
}

func TestSessionConcurrentAppend(t *testing.T) {
	s := NewSession("s1")

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			s.Append(RoleUser, fmt.Sprintf("turn %d", n))
		}(i)
	}
	wg.Wait()

	assert.Equal(t, 50, s.Len())
}
