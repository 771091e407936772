package config

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFromContext(t *testing.T) {
	assert.Equal(t, Default(), FromContext(context.Background()))

	cfg := Default()
	cfg.Analysis.Workers = 3
	ctx := NewContext(context.Background(), cfg)

	assert.Same(t, cfg, FromContext(ctx))
}

func TestDefault_IsValid(t *testing.T) {
	assert.NoError(t, Default().Validate())
}
