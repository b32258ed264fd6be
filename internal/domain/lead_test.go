package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewLeadList_StartsWithOneBlankLead(t *testing.T) {
	list := NewLeadList()

	require.Equal(t, 1, list.Len())
	assert.Equal(t, Lead{Name: "", Engagement: 0, Budget: 0}, list.Leads()[0])
}

func TestLeadList_RemoveLastRemainingIsNoop(t *testing.T) {
	list := NewLeadList()
	list.SetName(0, "A")

	removed := list.Remove(0)

	assert.False(t, removed)
	require.Equal(t, 1, list.Len())
	assert.Equal(t, "A", list.Leads()[0].Name)
}

func TestLeadList_AddAppendsBlankWithoutTouchingExisting(t *testing.T) {
	list := NewLeadListFrom([]Lead{{Name: "A", Engagement: 5, Budget: 100}})

	pos := list.Add()

	assert.Equal(t, 1, pos)
	assert.Equal(t, []Lead{
		{Name: "A", Engagement: 5, Budget: 100},
		{},
	}, list.Leads())
}

func TestLeadList_RemoveKeepsOrder(t *testing.T) {
	list := NewLeadListFrom([]Lead{{Name: "A"}, {Name: "B"}, {Name: "C"}})

	assert.True(t, list.Remove(1))
	assert.Equal(t, []Lead{{Name: "A"}, {Name: "C"}}, list.Leads())

	assert.False(t, list.Remove(5))
	assert.False(t, list.Remove(-1))
	assert.Equal(t, 2, list.Len())
}

func TestLeadList_RemoveNeverReachesZero(t *testing.T) {
	list := NewLeadListFrom([]Lead{{Name: "A"}, {Name: "B"}, {Name: "C"}})

	for i := 0; i < 10; i++ {
		list.Remove(0)
	}

	require.Equal(t, 1, list.Len())
	assert.Equal(t, "C", list.Leads()[0].Name)
}

func TestLeadList_FieldUpdatesAreIsolated(t *testing.T) {
	list := NewLeadListFrom([]Lead{
		{Name: "A", Engagement: 5, Budget: 100},
		{Name: "B", Engagement: 9, Budget: 500},
	})

	assert.True(t, list.SetEngagement(0, 7))
	assert.True(t, list.SetBudget(1, 750))
	assert.True(t, list.SetName(1, "Beta"))
	assert.False(t, list.SetName(2, "missing"))

	assert.Equal(t, []Lead{
		{Name: "A", Engagement: 7, Budget: 100},
		{Name: "Beta", Engagement: 9, Budget: 750},
	}, list.Leads())
}

func TestLeadList_LeadsReturnsCopy(t *testing.T) {
	list := NewLeadListFrom([]Lead{{Name: "A"}})

	snapshot := list.Leads()
	snapshot[0].Name = "changed"

	assert.Equal(t, "A", list.Leads()[0].Name)
}

func TestLeadList_MissingNames(t *testing.T) {
	list := NewLeadListFrom([]Lead{{Name: "A"}, {}, {Name: "C"}, {Name: " \t "}})

	assert.Equal(t, []int{1, 3}, list.MissingNames())
}

func TestDeref(t *testing.T) {
	assert.Equal(t, "", Deref[string](nil))
	assert.Equal(t, "x", Deref(Ptr("x")))
}
