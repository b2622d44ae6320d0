// Package sqlite provides SQLite database operations for oneiro.
package sqlite

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/oneirolab/oneiro/pkg/models"
)

// DreamStoreSuite is a test suite for dream-record operations.
type DreamStoreSuite struct {
	suite.Suite
	store   *Store
	dreams  *DreamStore
	cleanup func()
	ctx     context.Context
}

func (s *DreamStoreSuite) SetupTest() {
	s.store, s.cleanup = testDB(s.T())
	s.dreams = NewDreamStore(s.store)
	s.ctx = context.Background()
}

func (s *DreamStoreSuite) TearDownTest() {
	if s.cleanup != nil {
		s.cleanup()
	}
}

func TestDreamStoreSuite(t *testing.T) {
	suite.Run(t, new(DreamStoreSuite))
}

// TestAddDream_MonotonicIDs tests that IDs increase by one from the maximum.
func (s *DreamStoreSuite) TestAddDream_MonotonicIDs() {
	for want := int64(1); want <= 3; want++ {
		id, err := s.dreams.AddDream(s.ctx, &models.DreamRecord{Title: "t", Content: "c"})
		s.Require().NoError(err)
		s.Equal(want, id)
	}
}

// TestAddDream_RoundTrip tests that a stored dream reads back intact.
func (s *DreamStoreSuite) TestAddDream_RoundTrip() {
	created := time.Date(2024, 4, 2, 6, 30, 0, 0, time.UTC)
	in := &models.DreamRecord{
		CreatedAt: created,
		Title:     "Flying over water",
		Content:   "I was flying over a dark ocean.",
		Tags:      []string{"water", "flying", "water"},
		Lucid:     true,
		DreamSign: "hands looked wrong",
	}
	id, err := s.dreams.AddDream(s.ctx, in)
	s.Require().NoError(err)

	got, err := s.dreams.GetDreamByID(s.ctx, id)
	s.Require().NoError(err)
	s.Require().NotNil(got)
	s.Equal(in.Title, got.Title)
	s.Equal(in.Content, got.Content)
	s.Equal([]string{"flying", "water"}, got.Tags) // deduplicated, sorted
	s.True(got.Lucid)
	s.Equal("hands looked wrong", got.DreamSign)
	s.True(created.Equal(got.CreatedAt))
}

// TestGetDreamByID_Missing tests the absent case.
func (s *DreamStoreSuite) TestGetDreamByID_Missing() {
	got, err := s.dreams.GetDreamByID(s.ctx, 42)
	s.NoError(err)
	s.Nil(got)
}

// TestListDreams_Order tests ID-ascending ordering.
func (s *DreamStoreSuite) TestListDreams_Order() {
	for i := 0; i < 3; i++ {
		_, err := s.dreams.AddDream(s.ctx, &models.DreamRecord{Content: "c"})
		s.Require().NoError(err)
	}

	dreams, err := s.dreams.ListDreams(s.ctx)
	s.Require().NoError(err)
	s.Require().Len(dreams, 3)
	s.Equal(int64(1), dreams[0].ID)
	s.Equal(int64(3), dreams[2].ID)
}

// TestSearchDreams tests keyword search over title, content, and tags.
func (s *DreamStoreSuite) TestSearchDreams() {
	_, err := s.dreams.AddDream(s.ctx, &models.DreamRecord{Title: "Ocean storm", Content: "waves"})
	s.Require().NoError(err)
	_, err = s.dreams.AddDream(s.ctx, &models.DreamRecord{Title: "Office", Content: "an endless ocean of desks"})
	s.Require().NoError(err)
	_, err = s.dreams.AddDream(s.ctx, &models.DreamRecord{Title: "Teeth", Content: "falling out", Tags: []string{"ocean"}})
	s.Require().NoError(err)
	_, err = s.dreams.AddDream(s.ctx, &models.DreamRecord{Title: "Unrelated", Content: "nothing here"})
	s.Require().NoError(err)

	tests := []struct {
		name    string
		keyword string
		wantIDs []int64
	}{
		{name: "title match", keyword: "storm", wantIDs: []int64{1}},
		{name: "case-insensitive across fields", keyword: "OCEAN", wantIDs: []int64{1, 2, 3}},
		{name: "tag match", keyword: "ocean", wantIDs: []int64{1, 2, 3}},
		{name: "no match", keyword: "volcano", wantIDs: nil},
	}

	for _, tt := range tests {
		s.Run(tt.name, func() {
			got, err := s.dreams.SearchDreams(s.ctx, tt.keyword)
			s.Require().NoError(err)
			var ids []int64
			for _, d := range got {
				ids = append(ids, d.ID)
			}
			s.Equal(tt.wantIDs, ids)
		})
	}
}
