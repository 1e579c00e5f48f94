package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestListReturnsAllServices(t *testing.T) {
	svc := &StaticService{}

	list := svc.List()
	require.Len(t, list, 4)

	slugs := make([]string, len(list))
	for i, s := range list {
		slugs[i] = s.Slug
	}
	assert.ElementsMatch(t, []string{"wash-fold", "dry-cleaning", "ironing", "eco-friendly"}, slugs)
}

func TestGetBySlug(t *testing.T) {
	svc := &StaticService{}

	detail, err := svc.Get("dry-cleaning")
	require.NoError(t, err)
	assert.Equal(t, "Dry Cleaning", detail.Title)
	assert.NotEmpty(t, detail.Features)
	assert.NotEmpty(t, detail.Process)
	assert.NotEmpty(t, detail.Pricing)
}

func TestGetUnknownSlug(t *testing.T) {
	svc := &StaticService{}

	_, err := svc.Get("shoe-repair")
	assert.ErrorIs(t, err, ErrServiceNotFound)
}
