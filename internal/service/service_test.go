package service

import (
	"context"
	"encoding/json"
	"errors"
	"sort"
	"sync"
	"testing"
	"time"

	"brickset/client/internal/domain/task"
	"brickset/client/internal/queue"
	"brickset/client/internal/request"
	"brickset/client/internal/response"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeCatalog struct {
	mu sync.Mutex

	ownedMatches  int
	wantedMatches int
	failPage      int

	requested   []string
	setCalls    []uint64
	minifigSets []string
	setErr      error

	ownedMinifigs  []response.Minifig
	wantedMinifigs []response.Minifig
}

func (f *fakeCatalog) page(matches int, params request.SetsParams, label string) (response.SetsResponse, error) {
	raw, err := json.Marshal(params)
	if err != nil {
		return response.SetsResponse{}, err
	}
	var p struct {
		PageSize   int `json:"pageSize"`
		PageNumber int `json:"pageNumber"`
	}
	if err := json.Unmarshal(raw, &p); err != nil {
		return response.SetsResponse{}, err
	}

	f.mu.Lock()
	f.requested = append(f.requested, label+":"+string(raw))
	f.mu.Unlock()

	if p.PageNumber == f.failPage {
		return response.SetsResponse{}, errors.New("boom")
	}

	start := (p.PageNumber - 1) * p.PageSize
	end := min(start+p.PageSize, matches)

	resp := response.SetsResponse{Matches: matches}
	for id := start; id < end; id++ {
		resp.Sets = append(resp.Sets, response.Set{SetID: uint64(id + 1)})
	}
	return resp, nil
}

func (f *fakeCatalog) GetOwnedSets(_ context.Context, params request.SetsParams) (response.SetsResponse, error) {
	return f.page(f.ownedMatches, params, "owned")
}

func (f *fakeCatalog) GetWantedSets(_ context.Context, params request.SetsParams) (response.SetsResponse, error) {
	return f.page(f.wantedMatches, params, "wanted")
}

func (f *fakeCatalog) GetOwnedMinifigs(context.Context) (response.MinifigCollectionResponse, error) {
	return response.MinifigCollectionResponse{Matches: len(f.ownedMinifigs), Minifigs: f.ownedMinifigs}, nil
}

func (f *fakeCatalog) GetWantedMinifigs(context.Context) (response.MinifigCollectionResponse, error) {
	return response.MinifigCollectionResponse{Matches: len(f.wantedMinifigs), Minifigs: f.wantedMinifigs}, nil
}

func (f *fakeCatalog) SetCollection(_ context.Context, setID uint64, _ request.CollectionParams) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.setCalls = append(f.setCalls, setID)
	return f.setErr
}

func (f *fakeCatalog) SetMinifigCollection(_ context.Context, minifigNumber string, _ request.MinifigCollectionParams) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.minifigSets = append(f.minifigSets, minifigNumber)
	return f.setErr
}

type fakeRepository struct {
	mu       sync.Mutex
	sets     map[uint64]response.Set
	minifigs map[string]response.Minifig
}

func newFakeRepository() *fakeRepository {
	return &fakeRepository{sets: map[uint64]response.Set{}, minifigs: map[string]response.Minifig{}}
}

func (r *fakeRepository) EnsureSchema(context.Context) error { return nil }

func (r *fakeRepository) SaveSets(_ context.Context, sets []response.Set) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, s := range sets {
		r.sets[s.SetID] = s
	}
	return nil
}

func (r *fakeRepository) SaveMinifigs(_ context.Context, minifigs []response.Minifig) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, m := range minifigs {
		r.minifigs[m.MinifigNumber] = m
	}
	return nil
}

func (r *fakeRepository) CountSets(context.Context) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.sets), nil
}

type fakeQueue struct {
	mu    sync.Mutex
	added []task.Task
	acked []string
}

func (q *fakeQueue) AddTask(_ context.Context, t task.Task) (string, error) {
	q.mu.Lock()
	defer q.mu.Unlock()
	q.added = append(q.added, t)
	return "1-0", nil
}

func (q *fakeQueue) GetTask(ctx context.Context, _, _ string) (*redis.XMessage, error) {
	<-ctx.Done()
	return nil, ctx.Err()
}

func (q *fakeQueue) AckTask(_ context.Context, stream, msgID string) error {
	q.mu.Lock()
	defer q.mu.Unlock()
	q.acked = append(q.acked, stream+"/"+msgID)
	return nil
}

func (q *fakeQueue) AutoClaim(context.Context, string, string, time.Duration) ([]redis.XMessage, error) {
	return nil, nil
}

func (q *fakeQueue) EnsureStreamsExist(context.Context) error { return nil }

func message(t *testing.T, id string, tk task.Task) *redis.XMessage {
	t.Helper()

	value, err := tk.TaskValue()
	require.NoError(t, err)
	return &redis.XMessage{ID: id, Values: map[string]interface{}{
		"task_type": tk.TaskType(),
		"task_data": string(value),
	}}
}

func TestSyncCollection_FetchesEveryPage(t *testing.T) {
	catalog := &fakeCatalog{
		ownedMatches:   1200,
		wantedMatches:  3,
		ownedMinifigs:  []response.Minifig{{MinifigNumber: "sp001", OwnedTotal: 1}},
		wantedMinifigs: []response.Minifig{{MinifigNumber: "sp001"}, {MinifigNumber: "sw0001"}},
	}
	repo := newFakeRepository()
	svc := NewService(catalog, repo, &fakeQueue{}, 500, 2, 0)

	result, err := svc.SyncCollection(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 1200, result.OwnedSets)
	assert.Equal(t, 3, result.WantedSets)
	assert.Equal(t, 2, result.Minifigs)
	assert.Len(t, repo.sets, 1200)

	sort.Strings(catalog.requested)
	assert.Equal(t, []string{
		`owned:{"orderBy":"Number","pageSize":500,"pageNumber":1}`,
		`owned:{"orderBy":"Number","pageSize":500,"pageNumber":2}`,
		`owned:{"orderBy":"Number","pageSize":500,"pageNumber":3}`,
		`wanted:{"orderBy":"Number","pageSize":500,"pageNumber":1}`,
	}, catalog.requested)

	merged := repo.minifigs["sp001"]
	assert.True(t, merged.Wanted)
	assert.Equal(t, 1, merged.OwnedTotal)
}

func TestSyncCollection_PageFailure(t *testing.T) {
	catalog := &fakeCatalog{ownedMatches: 1200, failPage: 3}
	svc := NewService(catalog, newFakeRepository(), &fakeQueue{}, 500, 4, 0)

	_, err := svc.SyncCollection(context.Background())
	assert.ErrorContains(t, err, "owned sets page 3")
}

func TestNewService_ClampsPageSize(t *testing.T) {
	svc := NewService(&fakeCatalog{}, newFakeRepository(), &fakeQueue{}, 5000, 0, 0)

	assert.Equal(t, request.MaxPageSize, svc.pageSize)
	assert.Equal(t, 1, svc.maxWorkers)
}

func TestEnqueue(t *testing.T) {
	q := &fakeQueue{}
	svc := NewService(&fakeCatalog{}, newFakeRepository(), q, 500, 1, 0)
	ctx := context.Background()

	_, err := svc.EnqueueSetCollection(ctx, 6876, request.NewCollectionParams().Rating(5))
	require.NoError(t, err)
	_, err = svc.EnqueueSetMinifigCollection(ctx, "sw0001", request.NewMinifigCollectionParams().Owned(1))
	require.NoError(t, err)

	require.Len(t, q.added, 2)
	assert.Equal(t, task.SetCollectionTaskType, q.added[0].TaskType())
	assert.Equal(t, task.SetMinifigCollectionTaskType, q.added[1].TaskType())
}

func TestProcessMessage_AppliesAndAcks(t *testing.T) {
	catalog := &fakeCatalog{}
	q := &fakeQueue{}
	svc := NewService(catalog, newFakeRepository(), q, 500, 1, 0)
	ctx := context.Background()

	setStream := queue.StreamName(task.SetCollectionTaskType)
	minifigStream := queue.StreamName(task.SetMinifigCollectionTaskType)

	require.NoError(t, svc.processMessage(ctx, setStream, message(t, "1-0", &task.SetCollectionTask{SetID: 6876})))
	require.NoError(t, svc.processMessage(ctx, minifigStream, message(t, "2-0", &task.SetMinifigCollectionTask{MinifigNumber: "sw0001"})))

	assert.Equal(t, []uint64{6876}, catalog.setCalls)
	assert.Equal(t, []string{"sw0001"}, catalog.minifigSets)
	assert.Equal(t, []string{setStream + "/1-0", minifigStream + "/2-0"}, q.acked)
}

func TestProcessMessage_FailuresAreDroppedNotRetried(t *testing.T) {
	catalog := &fakeCatalog{setErr: errors.New("remote said no")}
	q := &fakeQueue{}
	svc := NewService(catalog, newFakeRepository(), q, 500, 1, 0)
	stream := queue.StreamName(task.SetCollectionTaskType)

	require.NoError(t, svc.processMessage(context.Background(), stream, message(t, "1-0", &task.SetCollectionTask{SetID: 1})))
	require.NoError(t, svc.processMessage(context.Background(), stream, &redis.XMessage{ID: "2-0", Values: map[string]interface{}{}}))

	assert.Len(t, catalog.setCalls, 1)
	assert.Empty(t, q.added)
	assert.Equal(t, []string{stream + "/1-0", stream + "/2-0"}, q.acked)
}

func TestRunWorkers_StopsOnCancel(t *testing.T) {
	svc := NewService(&fakeCatalog{}, newFakeRepository(), &fakeQueue{}, 500, 1, 0)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- svc.RunWorkers(ctx, 2) }()

	cancel()

	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(2 * time.Second):
		t.Fatal("workers did not stop")
	}
}
