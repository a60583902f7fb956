package logging

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestContext_document_and_view_round_trip(t *testing.T) {
	ctx := context.Background()

	ctx = WithDocument(ctx, "paper.pdf")
	ctx = WithView(ctx, "markup")

	assert.Equal(t, "paper.pdf", GetDocument(ctx))
	assert.Equal(t, "markup", GetView(ctx))
}

func TestContext_missing_values_return_empty(t *testing.T) {
	ctx := context.Background()

	assert.Empty(t, GetDocument(ctx))
	assert.Empty(t, GetView(ctx))
}
