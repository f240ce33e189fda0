package rdx

import (
	"encoding/json"
	"log"
	"os"
	"time"

	"voyago/globals"

	"github.com/redis/go-redis/v9"
)

var Conn = redis.NewClient(&redis.Options{
	Addr:     addr(),
	Password: os.Getenv("REDIS_PASSWORD"),
	DB:       0,
})

func addr() string {
	if v := os.Getenv("REDIS_URL"); v != "" {
		return v
	}
	return "localhost:6379"
}

const sessionTTL = 2 * time.Hour

// CacheSession snapshots a session payload under its id so a restarted
// process can show the user where they left off.
func CacheSession(sessionID string, payload any) {
	data, err := json.Marshal(payload)
	if err != nil {
		log.Println("session snapshot marshal error:", err)
		return
	}
	if err := Conn.Set(globals.Ctx, "session:"+sessionID, data, sessionTTL).Err(); err != nil {
		log.Println("session snapshot write error:", err)
	}
}

func DropSession(sessionID string) {
	if err := Conn.Del(globals.Ctx, "session:"+sessionID).Err(); err != nil {
		log.Println("session snapshot delete error:", err)
	}
}

// AcquireSubmitLock serializes itinerary submission for a session. Returns
// false when a submit is already in flight.
func AcquireSubmitLock(sessionID string, ttl time.Duration) bool {
	ok, err := Conn.SetNX(globals.Ctx, "submit:"+sessionID, "1", ttl).Result()
	if err != nil {
		log.Println("submit lock error:", err)
		// Redis being down must not block the user; the in-process flag
		// in the planner still guards double submits.
		return true
	}
	return ok
}

func ReleaseSubmitLock(sessionID string) {
	if err := Conn.Del(globals.Ctx, "submit:"+sessionID).Err(); err != nil {
		log.Println("submit lock release error:", err)
	}
}
