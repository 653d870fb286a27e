package filestorage

import (
	"context"
	"regexp"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestObjectKey(t *testing.T) {
	now := time.Date(2024, 5, 3, 10, 0, 0, 0, time.UTC)

	key := ObjectKey(now, "CV Final.PDF")
	assert.Regexp(t, regexp.MustCompile(`^submissions/2024/05/[0-9a-f-]{36}\.pdf$`), key)

	noExt := ObjectKey(now, "README")
	assert.True(t, strings.HasPrefix(noExt, "submissions/2024/05/"))
	assert.NotContains(t, noExt, ".")

	assert.NotEqual(t, ObjectKey(now, "a.txt"), ObjectKey(now, "a.txt"))
}

func TestDisabledStorage(t *testing.T) {
	var s FileStorage = DisabledStorage{}
	_, err := s.Store(context.Background(), Upload{FileName: "a.txt"})
	assert.ErrorIs(t, err, ErrStorageDisabled)
	assert.ErrorIs(t, s.Remove(context.Background(), "b", "k"), ErrStorageDisabled)
}
