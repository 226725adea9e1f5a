package password_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"fairhall/shared/password"
)

func TestHashAndVerify(t *testing.T) {
	hash, err := password.Hash("vendor123")
	assert.NoError(t, err)
	assert.NotEqual(t, "vendor123", hash)

	assert.NoError(t, password.Verify("vendor123", hash))
	assert.ErrorIs(t, password.Verify("wrong", hash), password.ErrInvalidPassword)
}

func TestHashEmptyPassword(t *testing.T) {
	_, err := password.Hash("")
	assert.Error(t, err)
}

func TestVerifyEmptyInputs(t *testing.T) {
	assert.ErrorIs(t, password.Verify("", "hash"), password.ErrInvalidPassword)
	assert.ErrorIs(t, password.Verify("pass", ""), password.ErrInvalidPassword)
}
