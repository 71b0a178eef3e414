package model

import (
	"fmt"
	"sync"
	"time"
)

type QueuedPlayer struct {
	Player   Player
	JoinedAt time.Time
}

// Queue is the matchmaking waiting list. Pairing is FIFO: the two
// players who have waited longest are matched first.
type Queue struct {
	waiting []QueuedPlayer
	mu      sync.Mutex
}

func NewQueue() *Queue {
	return &Queue{waiting: []QueuedPlayer{}}
}

func (q *Queue) AddPlayer(player Player) error {
	q.mu.Lock()
	defer q.mu.Unlock()

	for _, p := range q.waiting {
		if p.Player.ID == player.ID {
			return fmt.Errorf("player already in queue")
		}
	}

	q.waiting = append(q.waiting, QueuedPlayer{Player: player, JoinedAt: time.Now()})
	return nil
}

func (q *Queue) RemovePlayer(playerID string) {
	q.mu.Lock()
	defer q.mu.Unlock()

	for i, p := range q.waiting {
		if p.Player.ID == playerID {
			q.waiting = append(q.waiting[:i], q.waiting[i+1:]...)
			return
		}
	}
}

// NextPair pops the two longest-waiting players. The second return is
// false when fewer than two players are queued.
func (q *Queue) NextPair() (Player, Player, bool) {
	q.mu.Lock()
	defer q.mu.Unlock()

	if len(q.waiting) < 2 {
		return Player{}, Player{}, false
	}
	first := q.waiting[0].Player
	second := q.waiting[1].Player
	q.waiting = q.waiting[2:]
	return first, second, true
}

func (q *Queue) Size() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return len(q.waiting)
}
