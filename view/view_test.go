package view

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mwortmann/meetbook/book"
	"github.com/mwortmann/meetbook/entity"
)

var noon = time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)

func personFixture(t *testing.T) (*book.Book, *View[entity.Person]) {
	t.Helper()
	b := book.New()
	for _, name := range []string{"Alice", "Bob", "Carol"} {
		require.NoError(t, b.AddPerson(entity.NewPerson(name)))
	}
	return b, New(b.Persons, b.Version)
}

func TestDefaultPredicateShowsAll(t *testing.T) {
	_, v := personFixture(t)
	assert.Equal(t, 3, v.Len())
}

func TestSetPredicateFiltersInCanonicalOrder(t *testing.T) {
	_, v := personFixture(t)
	v.SetPredicate(PersonNameContains("o"))

	items := v.Items()
	require.Len(t, items, 2)
	assert.Equal(t, "Bob", items[0].Name)
	assert.Equal(t, "Carol", items[1].Name)

	v.SetPredicate(PersonNameContains("nobody"))
	assert.Empty(t, v.Items(), "zero matches is a valid outcome, not an error")

	v.SetPredicate(nil)
	assert.Equal(t, 3, v.Len(), "nil predicate falls back to show-all")
}

func TestViewTracksCanonicalMutations(t *testing.T) {
	b, v := personFixture(t)
	v.SetPredicate(PersonNameContains("d"))
	require.Empty(t, v.Items())

	require.NoError(t, b.AddPerson(entity.NewPerson("Dora")))
	items := v.Items()
	require.Len(t, items, 1, "mutations are visible without re-registration")
	assert.Equal(t, "Dora", items[0].Name)

	require.NoError(t, b.RemovePerson(items[0]))
	assert.Empty(t, v.Items())
}

func TestSubscribeNotifications(t *testing.T) {
	_, v := personFixture(t)
	calls := 0
	v.Subscribe(func() { calls++ })

	v.SetPredicate(nil)
	assert.Equal(t, 1, calls)

	v.Invalidate()
	assert.Equal(t, 2, calls)
}

func TestMeetingWithinHoursWindow(t *testing.T) {
	clock := entity.FixedClock{Time: noon}
	b := book.New()

	add := func(title string, startOffset time.Duration) entity.Meeting {
		m, err := entity.NewMeeting(title, noon.Add(startOffset), noon.Add(startOffset+time.Hour))
		require.NoError(t, err)
		require.NoError(t, b.AddMeeting(m))
		return m
	}
	add("already started", -time.Minute)
	add("right now", 0)
	add("tomorrow", 23*time.Hour)
	add("window edge", 24*time.Hour)
	add("too late", 24*time.Hour+time.Minute)

	v := New(b.Meetings, b.Version)
	pred, err := MeetingWithinHours(clock, 24)
	require.NoError(t, err)
	v.SetPredicate(pred)

	assert.Equal(t, []string{"right now", "tomorrow", "window edge"}, meetingTitles(v.Items()),
		"start in [now, now+24h], bounds inclusive, canonical order")
}

func TestMeetingWithinHoursRejectsNonPositive(t *testing.T) {
	clock := entity.FixedClock{Time: noon}

	_, err := MeetingWithinHours(clock, 0)
	assert.ErrorIs(t, err, entity.ErrInvalidArgument)

	_, err = MeetingWithinHours(clock, -3)
	assert.ErrorIs(t, err, entity.ErrInvalidArgument)
}

func TestMeetingTitleContains(t *testing.T) {
	m, err := entity.NewMeeting("Quarterly Review", noon, noon.Add(time.Hour))
	require.NoError(t, err)

	assert.True(t, MeetingTitleContains("review")(m))
	assert.False(t, MeetingTitleContains("standup")(m))
	assert.False(t, MeetingTitleContains()(m), "no keywords matches nothing")
}

func meetingTitles(ms []entity.Meeting) []string {
	out := make([]string, len(ms))
	for i, m := range ms {
		out[i] = m.Title
	}
	return out
}
