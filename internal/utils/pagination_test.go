package utils_test

import (
	"net/url"
	"testing"

	"oakline-partners/internal/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func queryOf(t *testing.T, link *string) url.Values {
	t.Helper()
	require.NotNil(t, link)
	parsed, err := url.Parse(*link)
	require.NoError(t, err)
	return parsed.Query()
}

func TestPageLinks_MiddlePageHasBothDirections(t *testing.T) {
	next, prev := utils.PageLinks("/api/leads", url.Values{}, 10, 10, 25)

	assert.Equal(t, "10", queryOf(t, next).Get("limit"))
	assert.Equal(t, "20", queryOf(t, next).Get("offset"))
	assert.Equal(t, "0", queryOf(t, prev).Get("offset"))
}

func TestPageLinks_FirstPageHasNoPrev(t *testing.T) {
	next, prev := utils.PageLinks("/api/leads", url.Values{}, 0, 10, 25)

	assert.NotNil(t, next)
	assert.Nil(t, prev)
}

func TestPageLinks_LastPageHasNoNext(t *testing.T) {
	next, prev := utils.PageLinks("/api/leads", url.Values{}, 20, 10, 25)

	assert.Nil(t, next)
	assert.NotNil(t, prev)
}

func TestPageLinks_SinglePageHasNeither(t *testing.T) {
	next, prev := utils.PageLinks("/api/leads", url.Values{}, 0, 10, 7)

	assert.Nil(t, next)
	assert.Nil(t, prev)
}

func TestPageLinks_PrevOffsetClampedToZero(t *testing.T) {
	// Offset 5 with limit 10 backs up past the start; prev must land on 0.
	_, prev := utils.PageLinks("/api/leads", url.Values{}, 5, 10, 25)

	assert.Equal(t, "0", queryOf(t, prev).Get("offset"))
}

func TestPageLinks_PreservesOtherParamsAndDropsStaleOnes(t *testing.T) {
	params := url.Values{}
	params.Set("status", "qualified")
	params.Add("tag", "tx")
	params.Add("tag", "priority")
	params.Set("offset", "999")
	params.Set("limit", "999")

	next, _ := utils.PageLinks("/api/leads", params, 0, 10, 25)

	q := queryOf(t, next)
	assert.Equal(t, "qualified", q.Get("status"))
	assert.Equal(t, []string{"tx", "priority"}, q["tag"])
	assert.Equal(t, []string{"10"}, q["offset"], "stale offset must not survive")
	assert.Equal(t, []string{"10"}, q["limit"])
}
