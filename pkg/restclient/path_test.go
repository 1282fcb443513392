package restclient

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBuildPath(t *testing.T) {
	t.Run("ResourceOnly", func(t *testing.T) {
		assert.Equal(t, "users", BuildPath("users", nil, nil))
	})

	t.Run("ScalarID", func(t *testing.T) {
		assert.Equal(t, "users/5", BuildPath("users", 5, nil))
		assert.Equal(t, "users/abc", BuildPath("users", "abc", nil))
		assert.Equal(t, "users/5", BuildPath("users", int64(5), nil))
	})

	t.Run("ZeroIsAValidID", func(t *testing.T) {
		assert.Equal(t, "users/0", BuildPath("users", 0, nil))
	})

	t.Run("TrailingSlashPreservedAfterID", func(t *testing.T) {
		assert.Equal(t, "users/5/", BuildPath("users/", 5, nil))
	})

	t.Run("CriteriaAsQueryString", func(t *testing.T) {
		assert.Equal(t, "users?active=true", BuildPath("users", map[string]any{"active": true}, nil))
		assert.Equal(t, "users?limit=10&page=2", BuildPath("users", map[string]any{"page": 2, "limit": 10}, nil))
	})

	t.Run("IDThenCriteria", func(t *testing.T) {
		assert.Equal(t, "users/5?verbose=true", BuildPath("users", 5, map[string]any{"verbose": true}))
		assert.Equal(t, "users/5/?verbose=true", BuildPath("users/", 5, map[string]any{"verbose": true}))
	})

	t.Run("EmptyCriteriaMapStillAppendsQuestionMark", func(t *testing.T) {
		assert.Equal(t, "users?", BuildPath("users", map[string]any{}, nil))
		assert.Equal(t, "users/5?", BuildPath("users", 5, map[string]any{}))
	})

	t.Run("NilCriteriaTreatedAsAbsent", func(t *testing.T) {
		var m map[string]any
		assert.Equal(t, "users", BuildPath("users", m, nil))
		assert.Equal(t, "users/5", BuildPath("users", 5, m))
	})

	t.Run("StringCriteriaMap", func(t *testing.T) {
		assert.Equal(t, "users?role=admin", BuildPath("users", map[string]string{"role": "admin"}, nil))
	})

	t.Run("ScalarFallbackCriteria", func(t *testing.T) {
		// A scalar third argument rides along as an extra path segment with
		// an unconditional trailing slash.
		assert.Equal(t, "users/5/details/", BuildPath("users", 5, "details"))
		assert.Equal(t, "users/5/details/", BuildPath("users/", 5, "details"))
		assert.Equal(t, "users/5/7/", BuildPath("users", 5, 7))
	})

	t.Run("FalsyScalarCriteriaSkipped", func(t *testing.T) {
		assert.Equal(t, "users/5", BuildPath("users", 5, ""))
		assert.Equal(t, "users/5", BuildPath("users", 5, 0))
	})

	t.Run("QueryEncodesSpecialCharacters", func(t *testing.T) {
		assert.Equal(t, "users?name=J%C3%BCrgen+D%26E", BuildPath("users", map[string]any{"name": "Jürgen D&E"}, nil))
	})
}
