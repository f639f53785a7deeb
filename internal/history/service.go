package history

import (
	"context"
	"errors"
)

type Service struct {
	repo        Repo
	ttlSeconds  int
	recentLimit int
}

func NewService(repo Repo, ttlSeconds, recentLimit int) *Service {
	if recentLimit <= 0 || recentLimit > recentCap {
		recentLimit = recentCap
	}
	return &Service{repo: repo, ttlSeconds: ttlSeconds, recentLimit: recentLimit}
}

func (s *Service) Record(ctx context.Context, rec *Record) error {
	if rec == nil || rec.ID == "" {
		return errors.New("record needs an id")
	}
	return s.repo.Save(ctx, rec, s.ttlSeconds)
}

func (s *Service) Get(ctx context.Context, id string) (*Record, error) {
	return s.repo.Get(ctx, id)
}

func (s *Service) Recent(ctx context.Context) ([]*Record, error) {
	return s.repo.Recent(ctx, s.recentLimit)
}

// Standings counts wins per partnership over Recent.
func (s *Service) Standings(ctx context.Context) (Standings, error) {
	recs, err := s.Recent(ctx)
	if err != nil {
		return Standings{}, err
	}
	return tally(recs), nil
}

func tally(recs []*Record) Standings {
	var st Standings
	for _, r := range recs {
		st.Matches++
		switch r.Winner {
		case 1:
			st.Team1++
		case 2:
			st.Team2++
		default:
			st.Ties++
		}
	}
	return st
}
