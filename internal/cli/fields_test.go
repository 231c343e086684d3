package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFieldsListsWholeCatalog(t *testing.T) {
	isolateState(t)

	out, err := runCommand(t, "", "fields")
	require.NoError(t, err)

	assert.Contains(t, out, "company (45 fields)")
	assert.Contains(t, out, "project (15 fields)")
	assert.Contains(t, out, "financial (5 fields)")
	assert.Contains(t, out, "technical (7 fields)")
	assert.Contains(t, out, "competition (5 fields)")
	assert.Contains(t, out, "risk (3 fields)")
	assert.Contains(t, out, "COMPANY_NAME")
	assert.Contains(t, out, "SUCCESS_PROBABILITY")
}

func TestFieldsCategoryFilter(t *testing.T) {
	isolateState(t)

	out, err := runCommand(t, "", "fields", "--category", "risk")
	require.NoError(t, err)

	assert.Contains(t, out, "risk (3 fields)")
	assert.Contains(t, out, "RISK_FACTORS")
	assert.NotContains(t, out, "COMPANY_NAME")
}

func TestFieldsUnknownCategory(t *testing.T) {
	isolateState(t)

	_, err := runCommand(t, "", "fields", "--category", "astrology")
	require.Error(t, err)
	assert.Equal(t, ExitArgument, ExitCodeFor(err))
}
