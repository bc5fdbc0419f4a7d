package probe

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/m-drozd/arcadium/internal/dto"
	"github.com/m-drozd/arcadium/internal/service/playerservice"
	"github.com/m-drozd/arcadium/pkg/clients"
	"github.com/samber/lo"
	"go.uber.org/zap"
)

// Prober drives concurrent view and upgrade traffic against a running
// instance and checks the stored counters afterwards.
type Prober struct {
	baseURL string
	client  clients.HTTPClientI
	workers int
}

func New(baseURL string, client clients.HTTPClientI, workers int) *Prober {
	if workers < 1 {
		workers = 1
	}
	return &Prober{
		baseURL: strings.TrimSuffix(baseURL, "/"),
		client:  client,
		workers: workers,
	}
}

// ViewReport sums up one view phase. Verify expects the prober to be
// the only writer touching the post during the run.
type ViewReport struct {
	PostID     int
	Requested  int
	OK         int
	Failed     int
	StartViews int64
	EndViews   int64
}

// Verify checks that every acknowledged view shows up in the stored
// total.
func (r *ViewReport) Verify() error {
	grown := r.EndViews - r.StartViews
	if grown != int64(r.OK) {
		return fmt.Errorf("post %d: %d views acknowledged but counter grew by %d", r.PostID, r.OK, grown)
	}
	return nil
}

// UpgradeReport sums up one upgrade phase. Verify expects the prober
// to be the only writer touching the player during the run.
type UpgradeReport struct {
	PlayerID   int
	Requested  int
	Upgraded   int
	Rejected   int
	Failed     int
	StartMoney int64
	EndMoney   int64
	StartLevel int
	EndLevel   int
}

// Verify checks that exactly the affordable number of upgrades went
// through and that money and level moved in lockstep with them.
func (r *UpgradeReport) Verify() error {
	if r.EndMoney < 0 {
		return fmt.Errorf("player %d: balance went negative: %d", r.PlayerID, r.EndMoney)
	}
	want := int64(r.Requested)
	if affordable := r.StartMoney / playerservice.UpgradeCost; affordable < want {
		want = affordable
	}
	if int64(r.Upgraded) != want {
		return fmt.Errorf("player %d: %d of %d upgrades succeeded, the balance allowed %d", r.PlayerID, r.Upgraded, r.Requested, want)
	}
	if spent := r.StartMoney - r.EndMoney; spent != int64(r.Upgraded)*playerservice.UpgradeCost {
		return fmt.Errorf("player %d: %d upgrades succeeded but the balance dropped by %d", r.PlayerID, r.Upgraded, spent)
	}
	if r.EndLevel != r.StartLevel+r.Upgraded {
		return fmt.Errorf("player %d: %d upgrades succeeded but the level went %d -> %d", r.PlayerID, r.Upgraded, r.StartLevel, r.EndLevel)
	}
	return nil
}

// RunViews reads the view counter, fires n concurrent view requests
// and reads it again.
func (p *Prober) RunViews(ctx context.Context, postID int, n int) (*ViewReport, error) {
	before, err := p.fetchPost(postID)
	if err != nil {
		return nil, err
	}

	shots, err := p.fire(ctx, n, func() Shot {
		status, _, headers, err := p.client.Post(fmt.Sprintf("%s/view/%d", p.baseURL, postID), nil, nil)
		if err != nil {
			return Shot{Err: err}
		}
		if status != http.StatusOK {
			zap.L().Warn("View request refused",
				zap.Int("status", status),
				zap.String("requestID", headers.Get("X-Request-Id")))
		}
		return Shot{Status: status}
	})
	if err != nil {
		return nil, err
	}

	after, err := p.fetchPost(postID)
	if err != nil {
		return nil, err
	}

	report := &ViewReport{
		PostID:    postID,
		Requested: n,
		OK: lo.CountBy(shots, func(s Shot) bool {
			return s.Err == nil && s.Status == http.StatusOK
		}),
		StartViews: before.Views,
		EndViews:   after.Views,
	}
	report.Failed = n - report.OK
	return report, nil
}

// RunUpgrades reads the player, fires n concurrent upgrade requests
// and reads the player again. Rejections with status 402 are an
// expected outcome, not a failure.
func (p *Prober) RunUpgrades(ctx context.Context, playerID int, n int) (*UpgradeReport, error) {
	before, err := p.fetchPlayer(playerID)
	if err != nil {
		return nil, err
	}

	shots, err := p.fire(ctx, n, func() Shot {
		status, _, headers, err := p.client.Post(fmt.Sprintf("%s/upgrade/%d", p.baseURL, playerID), nil, nil)
		if err != nil {
			return Shot{Err: err}
		}
		if status != http.StatusOK && status != http.StatusPaymentRequired {
			zap.L().Warn("Upgrade request failed",
				zap.Int("status", status),
				zap.String("requestID", headers.Get("X-Request-Id")))
		}
		return Shot{Status: status}
	})
	if err != nil {
		return nil, err
	}

	after, err := p.fetchPlayer(playerID)
	if err != nil {
		return nil, err
	}

	report := &UpgradeReport{
		PlayerID:  playerID,
		Requested: n,
		Upgraded: lo.CountBy(shots, func(s Shot) bool {
			return s.Err == nil && s.Status == http.StatusOK
		}),
		Rejected: lo.CountBy(shots, func(s Shot) bool {
			return s.Err == nil && s.Status == http.StatusPaymentRequired
		}),
		StartMoney: before.Money,
		EndMoney:   after.Money,
		StartLevel: before.Level,
		EndLevel:   after.Level,
	}
	report.Failed = n - report.Upgraded - report.Rejected
	return report, nil
}

func (p *Prober) fire(ctx context.Context, n int, shoot func() Shot) ([]Shot, error) {
	pool := NewPool(p.workers, n)
	for i := 0; i < n; i++ {
		if err := pool.Add(ctx, shoot); err != nil {
			pool.Close()
			return nil, err
		}
	}
	pool.Close()

	shots := make([]Shot, 0, n)
	for shot := range pool.Results {
		shots = append(shots, shot)
	}
	return shots, nil
}

func (p *Prober) fetchPost(postID int) (*dto.PostResponseDTO, error) {
	status, body, _, err := p.client.Get(fmt.Sprintf("%s/post/%d", p.baseURL, postID), nil)
	if err != nil {
		return nil, fmt.Errorf("get post %d: %w", postID, err)
	}
	if status != http.StatusOK {
		return nil, fmt.Errorf("get post %d: unexpected status %d", postID, status)
	}
	var post dto.PostResponseDTO
	if err := json.Unmarshal(body, &post); err != nil {
		return nil, fmt.Errorf("decode post %d: %w", postID, err)
	}
	return &post, nil
}

func (p *Prober) fetchPlayer(playerID int) (*dto.PlayerResponseDTO, error) {
	status, body, _, err := p.client.Get(fmt.Sprintf("%s/player/%d", p.baseURL, playerID), nil)
	if err != nil {
		return nil, fmt.Errorf("get player %d: %w", playerID, err)
	}
	if status != http.StatusOK {
		return nil, fmt.Errorf("get player %d: unexpected status %d", playerID, status)
	}
	var player dto.PlayerResponseDTO
	if err := json.Unmarshal(body, &player); err != nil {
		return nil, fmt.Errorf("decode player %d: %w", playerID, err)
	}
	return &player, nil
}
