// Package cache provides caching implementations for repository interfaces.
package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"todo_backend/internal/feature/todo/domain/entity"
	"todo_backend/internal/feature/todo/usecase"
)

// CachingTodoRepository decorates a TodoRepository with Redis caching.
// It implements the decorator pattern, transparently adding caching without
// modifying the underlying repository. Reads are cached; every write goes to
// the underlying repository first and then invalidates affected entries.
type CachingTodoRepository struct {
	inner     usecase.TodoRepository
	rdb       *redis.Client
	ttl       time.Duration
	namespace string
}

// CachingTodoRepository itself satisfies the interface it decorates.
var _ usecase.TodoRepository = (*CachingTodoRepository)(nil)

// NewCachingTodoRepository decorates a TodoRepository with Redis caching.
// If ttl is 0, it defaults to 5 minutes. If namespace is empty, it uses "todos".
func NewCachingTodoRepository(rdb *redis.Client, ttl time.Duration, inner usecase.TodoRepository, namespace string) *CachingTodoRepository {
	if ttl <= 0 {
		ttl = 5 * time.Minute
	}
	if namespace == "" {
		namespace = "todos"
	}
	return &CachingTodoRepository{
		inner:     inner,
		rdb:       rdb,
		ttl:       ttl,
		namespace: namespace,
	}
}

// Create inserts a todo and invalidates the cached lists.
func (c *CachingTodoRepository) Create(ctx context.Context, todo *entity.Todo) error {
	if err := c.inner.Create(ctx, todo); err != nil {
		return err
	}
	c.invalidateLists(ctx)
	return nil
}

// FindByID retrieves a todo, checking cache first then falling back to the database.
func (c *CachingTodoRepository) FindByID(ctx context.Context, id string) (*entity.Todo, error) {
	// Bypass cache if Redis is not configured
	if c.rdb == nil {
		return c.inner.FindByID(ctx, id)
	}

	key := c.itemKey(id)

	// 1) Check cache
	if b, err := c.rdb.Get(ctx, key).Bytes(); err == nil && len(b) > 0 {
		var out entity.Todo
		if err := json.Unmarshal(b, &out); err == nil {
			return &out, nil
		}
		// Delete corrupted cache entry
		_ = c.rdb.Del(ctx, key).Err()
	}

	// 2) Fallback to database
	out, err := c.inner.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	// 3) Store in cache (best effort)
	if b, err := json.Marshal(out); err == nil {
		_ = c.rdb.Set(ctx, key, b, c.ttl).Err()
	}

	return out, nil
}

// List retrieves a page of todos, checking cache first then falling back to the database.
func (c *CachingTodoRepository) List(ctx context.Context, limit, offset int) ([]entity.Todo, error) {
	if c.rdb == nil {
		return c.inner.List(ctx, limit, offset)
	}

	key := c.listKey(limit, offset)

	if b, err := c.rdb.Get(ctx, key).Bytes(); err == nil && len(b) > 0 {
		var out []entity.Todo
		if err := json.Unmarshal(b, &out); err == nil {
			return out, nil
		}
		_ = c.rdb.Del(ctx, key).Err()
	}

	out, err := c.inner.List(ctx, limit, offset)
	if err != nil {
		return nil, err
	}

	if b, err := json.Marshal(out); err == nil {
		_ = c.rdb.Set(ctx, key, b, c.ttl).Err()
	}

	return out, nil
}

// Update saves a todo and invalidates its cached entry along with the lists.
func (c *CachingTodoRepository) Update(ctx context.Context, todo *entity.Todo) error {
	if err := c.inner.Update(ctx, todo); err != nil {
		return err
	}
	if c.rdb != nil {
		_ = c.rdb.Del(ctx, c.itemKey(todo.ID)).Err()
	}
	c.invalidateLists(ctx)
	return nil
}

// Delete removes a todo and invalidates its cached entry along with the lists.
func (c *CachingTodoRepository) Delete(ctx context.Context, id string) error {
	if err := c.inner.Delete(ctx, id); err != nil {
		return err
	}
	if c.rdb != nil {
		_ = c.rdb.Del(ctx, c.itemKey(id)).Err()
	}
	c.invalidateLists(ctx)
	return nil
}

// itemKey generates the cache key for a single todo.
func (c *CachingTodoRepository) itemKey(id string) string {
	return fmt.Sprintf("%s:item:%s", c.namespace, id)
}

// listKey generates the cache key for a specific page.
func (c *CachingTodoRepository) listKey(limit, offset int) string {
	return fmt.Sprintf("%s:list:%d:%d", c.namespace, limit, offset)
}

// invalidateLists deletes all cached pages. Best effort: a failed cache
// deletion never fails the write that triggered it.
func (c *CachingTodoRepository) invalidateLists(ctx context.Context) {
	if c.rdb == nil {
		return
	}
	_ = c.deleteByPattern(ctx, fmt.Sprintf("%s:list:*", c.namespace))
}

// deleteByPattern deletes all cache keys matching a given pattern using SCAN.
func (c *CachingTodoRepository) deleteByPattern(ctx context.Context, pattern string) error {
	var cursor uint64
	for {
		keys, cur, err := c.rdb.Scan(ctx, cursor, pattern, 200).Result()
		if err != nil {
			return err
		}
		if len(keys) > 0 {
			if err := c.rdb.Del(ctx, keys...).Err(); err != nil {
				return err
			}
		}
		cursor = cur
		if cursor == 0 {
			break
		}
	}
	return nil
}
