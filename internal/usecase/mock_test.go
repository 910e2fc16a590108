package usecase

import (
	"context"
	"sync"
	"sync/atomic"
	"time"

	"github.com/hszk-dev/openveo-repository/internal/domain/model"
)

// mockVideoCatalog provides a configurable mock for VideoCatalog.
type mockVideoCatalog struct {
	getVideoFn    func(ctx context.Context, id string) (*model.Video, error)
	getVideoCount atomic.Int32
}

func (m *mockVideoCatalog) GetVideo(ctx context.Context, id string) (*model.Video, error) {
	m.getVideoCount.Add(1)
	if m.getVideoFn != nil {
		return m.getVideoFn(ctx, id)
	}
	return nil, nil
}

// mockEventPublisher records published events.
type mockEventPublisher struct {
	mu        sync.Mutex
	events    []model.Event
	publishFn func(ctx context.Context, event model.Event) error
}

func (m *mockEventPublisher) Publish(ctx context.Context, event model.Event) error {
	m.mu.Lock()
	m.events = append(m.events, event)
	m.mu.Unlock()
	if m.publishFn != nil {
		return m.publishFn(ctx, event)
	}
	return nil
}

func (m *mockEventPublisher) published() []model.Event {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]model.Event(nil), m.events...)
}

// mockVideoCache is an in-memory VideoCache with overridable behavior.
type mockVideoCache struct {
	mu       sync.RWMutex
	data     map[string]*model.Video
	getFn    func(ctx context.Context, videoID string) (*model.Video, error)
	setFn    func(ctx context.Context, video *model.Video, ttl time.Duration) error
	deleteFn func(ctx context.Context, videoID string) error
}

func newMockVideoCache() *mockVideoCache {
	return &mockVideoCache{
		data: make(map[string]*model.Video),
	}
}

func (m *mockVideoCache) Get(ctx context.Context, videoID string) (*model.Video, error) {
	if m.getFn != nil {
		return m.getFn(ctx, videoID)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.data[videoID], nil
}

func (m *mockVideoCache) Set(ctx context.Context, video *model.Video, ttl time.Duration) error {
	if m.setFn != nil {
		return m.setFn(ctx, video, ttl)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.data[video.ID] = video
	return nil
}

func (m *mockVideoCache) Delete(ctx context.Context, videoID string) error {
	if m.deleteFn != nil {
		return m.deleteFn(ctx, videoID)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.data, videoID)
	return nil
}

func (m *mockVideoCache) size() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.data)
}

// mockFileReferenceStore provides a configurable mock for FileReferenceStore.
type mockFileReferenceStore struct {
	listInstancesFn func(ctx context.Context, repositoryType string) ([]model.RepositoryInstance, error)
	removeFilesFn   func(ctx context.Context, instanceID int64) (int64, error)
	removed         []int64
}

func (m *mockFileReferenceStore) ListInstances(ctx context.Context, repositoryType string) ([]model.RepositoryInstance, error) {
	if m.listInstancesFn != nil {
		return m.listInstancesFn(ctx, repositoryType)
	}
	return nil, nil
}

func (m *mockFileReferenceStore) RemoveFiles(ctx context.Context, instanceID int64) (int64, error) {
	m.removed = append(m.removed, instanceID)
	if m.removeFilesFn != nil {
		return m.removeFilesFn(ctx, instanceID)
	}
	return 0, nil
}

// mockEventStore provides a configurable mock for EventStore.
type mockEventStore struct {
	saveFn func(ctx context.Context, event model.Event) error
	saved  []model.Event
}

func (m *mockEventStore) Save(ctx context.Context, event model.Event) error {
	if m.saveFn != nil {
		if err := m.saveFn(ctx, event); err != nil {
			return err
		}
	}
	m.saved = append(m.saved, event)
	return nil
}
