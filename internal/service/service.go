package service

import (
	"context"
	"fmt"
	"sync"
	"time"

	"brickset/client/internal/domain/task"
	"brickset/client/internal/queue"
	"brickset/client/internal/repository"
	"brickset/client/internal/request"
	"brickset/client/internal/response"

	"github.com/redis/go-redis/v9"
	log "github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"
)

// Catalog is the part of the Brickset session the service drives.
type Catalog interface {
	GetOwnedSets(ctx context.Context, params request.SetsParams) (response.SetsResponse, error)
	GetWantedSets(ctx context.Context, params request.SetsParams) (response.SetsResponse, error)
	GetOwnedMinifigs(ctx context.Context) (response.MinifigCollectionResponse, error)
	GetWantedMinifigs(ctx context.Context) (response.MinifigCollectionResponse, error)
	SetCollection(ctx context.Context, setID uint64, params request.CollectionParams) error
	SetMinifigCollection(ctx context.Context, minifigNumber string, params request.MinifigCollectionParams) error
}

type Service struct {
	catalog     Catalog
	repository  repository.ArchiveRepository
	queue       queue.Queue
	pageSize    int
	maxWorkers  int
	minIdleTime time.Duration
}

func NewService(
	catalog Catalog,
	repository repository.ArchiveRepository,
	queue queue.Queue,
	pageSize int,
	maxWorkers int,
	minIdleTime time.Duration,
) *Service {
	if pageSize <= 0 || pageSize > request.MaxPageSize {
		pageSize = request.MaxPageSize
	}
	if maxWorkers <= 0 {
		maxWorkers = 1
	}

	return &Service{
		catalog:     catalog,
		repository:  repository,
		queue:       queue,
		pageSize:    pageSize,
		maxWorkers:  maxWorkers,
		minIdleTime: minIdleTime,
	}
}

// SyncResult counts what a sync stored.
type SyncResult struct {
	OwnedSets  int
	WantedSets int
	Minifigs   int
}

type setsFetcher func(ctx context.Context, params request.SetsParams) (response.SetsResponse, error)

// SyncCollection archives the user's owned and wanted sets and minifigs.
func (s *Service) SyncCollection(ctx context.Context) (*SyncResult, error) {
	result := &SyncResult{}

	owned, err := s.syncSets(ctx, "owned", s.catalog.GetOwnedSets)
	if err != nil {
		return nil, err
	}
	result.OwnedSets = owned

	wanted, err := s.syncSets(ctx, "wanted", s.catalog.GetWantedSets)
	if err != nil {
		return nil, err
	}
	result.WantedSets = wanted

	minifigs, err := s.syncMinifigs(ctx)
	if err != nil {
		return nil, err
	}
	result.Minifigs = minifigs

	log.Infof("✅ Sync finished: %d owned sets, %d wanted sets, %d minifigs",
		result.OwnedSets, result.WantedSets, result.Minifigs)

	return result, nil
}

// syncSets reads page one to learn the match count, then fetches the
// remaining pages concurrently.
func (s *Service) syncSets(ctx context.Context, label string, fetch setsFetcher) (int, error) {
	params := request.NewSetsParams().
		OrderBy(request.OrderByNumber).
		PageSize(s.pageSize)

	first, err := fetch(ctx, params.PageNumber(1))
	if err != nil {
		return 0, fmt.Errorf("failed to fetch %s sets page 1: %w", label, err)
	}
	if err := s.repository.SaveSets(ctx, first.Sets); err != nil {
		return 0, err
	}

	totalPages := (first.Matches + s.pageSize - 1) / s.pageSize
	log.Infof("🔄 %s sets: %d matches over %d pages", label, first.Matches, totalPages)

	var mu sync.Mutex
	saved := len(first.Sets)

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(s.maxWorkers)

	for page := 2; page <= totalPages; page++ {
		g.Go(func() error {
			resp, err := fetch(gctx, params.PageNumber(page))
			if err != nil {
				return fmt.Errorf("failed to fetch %s sets page %d: %w", label, page, err)
			}
			if err := s.repository.SaveSets(gctx, resp.Sets); err != nil {
				return err
			}

			mu.Lock()
			saved += len(resp.Sets)
			mu.Unlock()

			log.Debugf("📦 %s sets page %d/%d stored", label, page, totalPages)
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return 0, err
	}

	return saved, nil
}

func (s *Service) syncMinifigs(ctx context.Context) (int, error) {
	var owned, wanted response.MinifigCollectionResponse

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		owned, err = s.catalog.GetOwnedMinifigs(gctx)
		return err
	})
	g.Go(func() error {
		var err error
		wanted, err = s.catalog.GetWantedMinifigs(gctx)
		return err
	})
	if err := g.Wait(); err != nil {
		return 0, fmt.Errorf("failed to fetch minifig collection: %w", err)
	}

	// A minifig can be both owned and wanted
	byNumber := make(map[string]response.Minifig, len(owned.Minifigs)+len(wanted.Minifigs))
	for _, m := range owned.Minifigs {
		byNumber[m.MinifigNumber] = m
	}
	for _, m := range wanted.Minifigs {
		if prev, ok := byNumber[m.MinifigNumber]; ok {
			prev.Wanted = true
			byNumber[m.MinifigNumber] = prev
			continue
		}
		byNumber[m.MinifigNumber] = m
	}

	minifigs := make([]response.Minifig, 0, len(byNumber))
	for _, m := range byNumber {
		minifigs = append(minifigs, m)
	}

	if err := s.repository.SaveMinifigs(ctx, minifigs); err != nil {
		return 0, err
	}
	return len(minifigs), nil
}

// EnqueueSetCollection defers a setCollection call to the workers.
func (s *Service) EnqueueSetCollection(ctx context.Context, setID uint64, params request.CollectionParams) (string, error) {
	return s.queue.AddTask(ctx, &task.SetCollectionTask{SetID: setID, Params: params})
}

// EnqueueSetMinifigCollection defers a setMinifigCollection call to the workers.
func (s *Service) EnqueueSetMinifigCollection(ctx context.Context, minifigNumber string, params request.MinifigCollectionParams) (string, error) {
	return s.queue.AddTask(ctx, &task.SetMinifigCollectionTask{MinifigNumber: minifigNumber, Params: params})
}

// RunWorkers applies queued collection changes until ctx is cancelled.
func (s *Service) RunWorkers(ctx context.Context, numWorkers int) error {
	var wg sync.WaitGroup

	for _, taskType := range task.Types {
		s.runWorkersForStream(ctx, &wg, numWorkers, queue.StreamName(taskType), taskType)
	}

	wg.Wait()
	return nil
}

func (s *Service) runWorkersForStream(ctx context.Context, wg *sync.WaitGroup, numWorkers int, streamName, workerType string) {
	// Picks up messages left pending by consumers that died
	if s.minIdleTime > 0 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			ticker := time.NewTicker(s.minIdleTime)
			defer ticker.Stop()
			for {
				select {
				case <-ctx.Done():
					return
				case <-ticker.C:
					consumer := fmt.Sprintf("autoclaimer-%s", workerType)
					claimed, err := s.queue.AutoClaim(ctx, consumer, streamName, s.minIdleTime)
					if err != nil {
						log.Errorf("❌ Failed to auto-claim messages for %s: %v", streamName, err)
						continue
					}
					for _, msg := range claimed {
						if err := s.processMessage(ctx, streamName, &msg); err != nil {
							log.Errorf("❌ Failed to process auto-claimed message %s: %v", msg.ID, err)
						}
					}
				}
			}
		}()
	}

	for i := 0; i < numWorkers; i++ {
		wg.Add(1)
		go func(workerID int) {
			defer wg.Done()
			consumer := fmt.Sprintf("%s-worker-%d", workerType, workerID)
			log.Infof("🚀 Starting %s worker %d", workerType, workerID)
			for {
				select {
				case <-ctx.Done():
					log.Infof("🛑 %s worker %d stopping", workerType, workerID)
					return
				default:
					msg, err := s.queue.GetTask(ctx, consumer, streamName)
					if err != nil {
						if ctx.Err() == nil {
							log.Errorf("❌ Failed to get task from %s: %v", streamName, err)
						}
						continue
					}

					if msg != nil {
						if err := s.processMessage(ctx, streamName, msg); err != nil {
							log.Errorf("❌ Failed to process message %s: %v", msg.ID, err)
						}
					}
				}
			}
		}(i + 1)
	}
}

// processMessage applies one task and acks it. A failed Brickset call is
// logged and dropped.
func (s *Service) processMessage(ctx context.Context, streamName string, msg *redis.XMessage) error {
	if err := s.apply(ctx, msg); err != nil {
		log.Warnf("⚠️ Dropping message %s: %v", msg.ID, err)
	}

	if err := s.queue.AckTask(ctx, streamName, msg.ID); err != nil {
		return fmt.Errorf("failed to ack message %s: %w", msg.ID, err)
	}
	return nil
}

func (s *Service) apply(ctx context.Context, msg *redis.XMessage) error {
	taskType, ok := msg.Values["task_type"].(string)
	if !ok {
		return fmt.Errorf("invalid task type in message %s", msg.ID)
	}

	taskData, ok := msg.Values["task_data"].(string)
	if !ok {
		return fmt.Errorf("invalid task data in message %s", msg.ID)
	}

	switch taskType {
	case task.SetCollectionTaskType:
		t, err := task.UnmarshalTask[*task.SetCollectionTask]([]byte(taskData))
		if err != nil {
			return fmt.Errorf("failed to unmarshal set collection task: %w", err)
		}
		if err := s.catalog.SetCollection(ctx, t.SetID, t.Params); err != nil {
			return fmt.Errorf("setCollection %d: %w", t.SetID, err)
		}
		log.Infof("✅ Updated set %d", t.SetID)

	case task.SetMinifigCollectionTaskType:
		t, err := task.UnmarshalTask[*task.SetMinifigCollectionTask]([]byte(taskData))
		if err != nil {
			return fmt.Errorf("failed to unmarshal minifig collection task: %w", err)
		}
		if err := s.catalog.SetMinifigCollection(ctx, t.MinifigNumber, t.Params); err != nil {
			return fmt.Errorf("setMinifigCollection %s: %w", t.MinifigNumber, err)
		}
		log.Infof("✅ Updated minifig %s", t.MinifigNumber)

	default:
		return fmt.Errorf("unknown task type: %s", taskType)
	}

	return nil
}
