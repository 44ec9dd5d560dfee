//go:build integration

package bucket

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"portfolio/pkg/testutil/containers"
)

type RedisBucketStoreSuite struct {
	suite.Suite
	redis *containers.RedisContainer
	store *RedisBucketStore
	ctx   context.Context
}

func TestRedisBucketStoreSuite(t *testing.T) {
	suite.Run(t, new(RedisBucketStoreSuite))
}

func (s *RedisBucketStoreSuite) SetupSuite() {
	s.redis = containers.NewRedisContainer(s.T())
	s.store = NewRedisBucketStore(s.redis.Client)
	s.ctx = context.Background()
}

func (s *RedisBucketStoreSuite) SetupTest() {
	s.Require().NoError(s.redis.FlushAll(s.ctx))
}

func (s *RedisBucketStoreSuite) TestAllowUpToLimit() {
	for i := range testLimit {
		result, err := s.store.Allow(s.ctx, "rl:ip:chat:203.0.113.1", testLimit, testWindow)
		s.Require().NoError(err)
		s.True(result.Allowed)
		s.Equal(testLimit-i-1, result.Remaining)
	}

	result, err := s.store.Allow(s.ctx, "rl:ip:chat:203.0.113.1", testLimit, testWindow)
	s.Require().NoError(err)
	s.False(result.Allowed)
	s.Equal(0, result.Remaining)
	s.WithinDuration(time.Now().Add(testWindow), result.ResetAt, 5*time.Second)
}

func (s *RedisBucketStoreSuite) TestKeyExpires() {
	_, err := s.store.Allow(s.ctx, "rl:ip:contact:203.0.113.2", 1, time.Minute)
	s.Require().NoError(err)

	ttl, err := s.redis.Client.PTTL(s.ctx, "rl:ip:contact:203.0.113.2").Result()
	s.Require().NoError(err)
	s.Greater(ttl, time.Duration(0))
}

func (s *RedisBucketStoreSuite) TestReset() {
	_, err := s.store.AllowN(s.ctx, "rl:ip:contact:203.0.113.3", 3, 3, testWindow)
	s.Require().NoError(err)

	s.Require().NoError(s.store.Reset(s.ctx, "rl:ip:contact:203.0.113.3"))

	result, err := s.store.Allow(s.ctx, "rl:ip:contact:203.0.113.3", 3, testWindow)
	s.Require().NoError(err)
	s.True(result.Allowed)
}
