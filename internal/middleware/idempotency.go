package middleware

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"office-attendance/internal/shared/apperror"
	"office-attendance/internal/shared/contextutil"
	"office-attendance/internal/shared/response"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
)

const (
	IdempotencyKeyHeader = "Idempotency-Key"
	idempotencyLockTTL   = 30 * time.Second
)

// IdempotentResponse is what gets replayed for a repeated key.
type IdempotentResponse struct {
	Status int             `json:"status"`
	Body   json.RawMessage `json:"body"`
}

type bodyRecorder struct {
	gin.ResponseWriter
	body *bytes.Buffer
}

func (w *bodyRecorder) Write(b []byte) (int, error) {
	w.body.Write(b)
	return w.ResponseWriter.Write(b)
}

func IdempotencyCacheKey(path, scope, key string) string {
	return fmt.Sprintf("idemp:%s:%s:%s", path, scope, key)
}

// Idempotency replays the first successful response of a POST carrying an
// Idempotency-Key for ttl. A nil client disables it, and a Redis failure lets
// the request through unprotected.
func Idempotency(rdb *redis.Client, ttl time.Duration) gin.HandlerFunc {
	return func(c *gin.Context) {
		key := c.GetHeader(IdempotencyKeyHeader)
		if rdb == nil || key == "" || c.Request.Method != http.MethodPost {
			c.Next()
			return
		}

		scope := "anonymous"
		if sub, ok := contextutil.GetSubject(c.Request.Context()); ok {
			scope = sub.Role + ":" + strconv.FormatUint(uint64(sub.ID), 10)
		}
		cacheKey := IdempotencyCacheKey(c.FullPath(), scope, key)
		lockKey := cacheKey + ":lock"
		ctx := c.Request.Context()

		if val, err := rdb.Get(ctx, cacheKey).Bytes(); err == nil {
			var cached IdempotentResponse
			if json.Unmarshal(val, &cached) == nil {
				c.Header("Idempotent-Replayed", "true")
				c.Data(cached.Status, "application/json; charset=utf-8", cached.Body)
				c.Abort()
				return
			}
		}

		acquired, err := rdb.SetNX(ctx, lockKey, "locked", idempotencyLockTTL).Result()
		if err != nil {
			c.Next()
			return
		}
		if !acquired {
			response.Error(c, http.StatusConflict, apperror.CodeConflict,
				"A request with this Idempotency-Key is still being processed", nil)
			c.Abort()
			return
		}
		defer rdb.Del(ctx, lockKey)

		rec := &bodyRecorder{ResponseWriter: c.Writer, body: &bytes.Buffer{}}
		c.Writer = rec

		c.Next()

		status := rec.Status()
		if status < http.StatusOK || status >= http.StatusMultipleChoices {
			return
		}
		data, err := json.Marshal(IdempotentResponse{Status: status, Body: rec.body.Bytes()})
		if err != nil {
			return
		}
		rdb.Set(ctx, cacheKey, data, ttl)
	}
}
