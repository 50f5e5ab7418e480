package main

import (
	"context"
	"crypto/rand"
	"database/sql"
	"encoding/binary"
	"encoding/hex"
	"fmt"
	"log"
	"sync"
	"time"

	_ "github.com/go-sql-driver/mysql"
	"github.com/typedid/uuid"
)

// ClockState is the durable part of a v1/v6 generator: the node identity,
// the 14-bit clock sequence, and the last Gregorian tick it ran at.
// Persisting it across restarts keeps the sequence from repeating when a
// process comes back with a clock that went backwards while it was down.
type ClockState struct {
	Owner     string  // logical generator name, one row per owner
	ClockSeq  uint16  // 14-bit clock sequence
	Node      [6]byte // 48-bit node identity
	LastTicks uint64  // Gregorian ticks at the last checkpoint
}

// ClockStateDAO encapsulates all database operations for clock state rows.
type ClockStateDAO struct {
	db *sql.DB
}

// NewClockStateDAO creates a new DAO with provided database DSN.
func NewClockStateDAO(dsn string) (*ClockStateDAO, error) {
	db, err := sql.Open("mysql", dsn)
	if err != nil {
		return nil, err
	}

	// DB performance and safety tuning
	db.SetMaxOpenConns(10)
	db.SetMaxIdleConns(5)
	db.SetConnMaxLifetime(time.Hour)

	return &ClockStateDAO{
		db: db,
	}, nil
}

// Claim loads the state row for owner, bumps the clock sequence, and
// writes it back in one transaction. Bumping on every claim means a
// restarted process can never reuse the sequence its previous life was
// generating with, even if the wall clock regressed in between.
//
// If no row exists yet, one is created with a random sequence and a
// random multicast node.
func (dao *ClockStateDAO) Claim(ctx context.Context, owner string) (*ClockState, error) {
	tx, err := dao.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, err
	}
	defer tx.Rollback()

	var (
		seq     uint16
		nodeHex string
		ticks   uint64
		node    [6]byte
	)
	err = tx.QueryRowContext(ctx,
		"SELECT clock_seq, node, last_ticks FROM uuid_clock_state WHERE owner = ? FOR UPDATE",
		owner).Scan(&seq, &nodeHex, &ticks)

	switch {
	case err == sql.ErrNoRows:
		state, err := freshState(owner)
		if err != nil {
			return nil, err
		}
		_, err = tx.ExecContext(ctx,
			"INSERT INTO uuid_clock_state (owner, clock_seq, node, last_ticks) VALUES (?, ?, ?, ?)",
			owner, state.ClockSeq, hex.EncodeToString(state.Node[:]), state.LastTicks)
		if err != nil {
			return nil, err
		}
		if err = tx.Commit(); err != nil {
			return nil, err
		}
		return state, nil

	case err != nil:
		return nil, err
	}

	b, err := hex.DecodeString(nodeHex)
	if err != nil || len(b) != 6 {
		return nil, fmt.Errorf("corrupt node column for owner %q: %q", owner, nodeHex)
	}
	copy(node[:], b)

	seq = (seq + 1) & 0x3fff
	_, err = tx.ExecContext(ctx,
		"UPDATE uuid_clock_state SET clock_seq = ? WHERE owner = ?", seq, owner)
	if err != nil {
		return nil, err
	}
	if err = tx.Commit(); err != nil {
		return nil, err
	}

	return &ClockState{
		Owner:     owner,
		ClockSeq:  seq,
		Node:      node,
		LastTicks: ticks,
	}, nil
}

// Checkpoint records the tick count the generator has reached. The next
// Claim compares its own clock against this to detect regressions that
// happened while no process was running.
func (dao *ClockStateDAO) Checkpoint(ctx context.Context, owner string, ticks uint64) error {
	_, err := dao.db.ExecContext(ctx,
		"UPDATE uuid_clock_state SET last_ticks = ? WHERE owner = ?", ticks, owner)
	return err
}

// freshState builds a first-run state: random 14-bit sequence, random
// node with the multicast bit set so it cannot collide with a real
// hardware address.
func freshState(owner string) (*ClockState, error) {
	var b [8]byte
	if _, err := rand.Read(b[:]); err != nil {
		return nil, err
	}
	var node [6]byte
	copy(node[:], b[2:])
	node[0] |= 0x01
	return &ClockState{
		Owner:    owner,
		ClockSeq: binary.BigEndian.Uint16(b[:2]) & 0x3fff,
		Node:     node,
	}, nil
}

// PersistentGenerator couples a uuid.Generator with a DAO so its clock
// state survives restarts. The generator itself still does all sequence
// bumping at runtime; the database only brackets process lifetimes.
type PersistentGenerator struct {
	owner string
	gen   *uuid.Generator
	dao   *ClockStateDAO

	mu        sync.Mutex
	lastTicks uint64
}

// NewPersistentGenerator claims the owner's state row and seeds a
// generator from it. A clock that regressed past the last checkpoint is
// tolerated because Claim already bumped the sequence.
func NewPersistentGenerator(ctx context.Context, dao *ClockStateDAO, owner string) (*PersistentGenerator, error) {
	state, err := dao.Claim(ctx, owner)
	if err != nil {
		return nil, err
	}

	now := uuid.GregorianTicks(time.Now())
	if now < state.LastTicks {
		log.Printf("clock is %d ticks behind the last checkpoint for %q, relying on bumped sequence %d",
			state.LastTicks-now, owner, state.ClockSeq)
	}

	gen := uuid.NewGenerator()
	gen.SetNodeID(state.Node)

	return &PersistentGenerator{
		owner: owner,
		gen:   gen,
		dao:   dao,
	}, nil
}

// NewV1 generates a time-based UUID and remembers its tick count for the
// next checkpoint.
func (p *PersistentGenerator) NewV1() (uuid.UUID, error) {
	u, err := p.gen.NewV1()
	if err != nil {
		return uuid.Nil, err
	}
	p.mu.Lock()
	p.lastTicks = u.GregorianTimestamp()
	p.mu.Unlock()
	return u, nil
}

// Checkpoint writes the highest tick seen so far back to the database.
func (p *PersistentGenerator) Checkpoint(ctx context.Context) error {
	p.mu.Lock()
	ticks := p.lastTicks
	p.mu.Unlock()
	if ticks == 0 {
		return nil
	}
	return p.dao.Checkpoint(ctx, p.owner, ticks)
}

func main() {
	// Please modify this DSN with your real DB credentials before use.
	// Expected schema:
	//   CREATE TABLE uuid_clock_state (
	//     owner      VARCHAR(64) PRIMARY KEY,
	//     clock_seq  SMALLINT UNSIGNED NOT NULL,
	//     node       CHAR(12) NOT NULL,
	//     last_ticks BIGINT UNSIGNED NOT NULL DEFAULT 0
	//   );
	dsn := "lzww:123456@tcp(127.0.0.1:3306)/test_db?parseTime=true"

	ctx := context.Background()
	dao, err := NewClockStateDAO(dsn)
	if err != nil {
		log.Fatal(err)
	}

	gen, err := NewPersistentGenerator(ctx, dao, "order-service")
	if err != nil {
		log.Fatal(err)
	}

	log.Println("Persistent v1 generator started...")

	// Checkpoint the clock every few seconds in the background.
	go func() {
		ticker := time.NewTicker(3 * time.Second)
		for range ticker.C {
			if err := gen.Checkpoint(ctx); err != nil {
				log.Printf("checkpoint failed: %v", err)
			}
		}
	}()

	var wg sync.WaitGroup
	start := time.Now()

	// Simulate 10 concurrent goroutines, each acquiring 500 UUIDs
	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 500; j++ {
				if _, err := gen.NewV1(); err != nil {
					log.Printf("Error: %v", err)
				}
			}
		}()
	}

	wg.Wait()
	if err := gen.Checkpoint(ctx); err != nil {
		log.Printf("final checkpoint failed: %v", err)
	}
	elapsed := time.Since(start)
	log.Printf("Total time: %s, Finish generating 5000 UUIDs", elapsed)
}
