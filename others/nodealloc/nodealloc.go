package main

import (
	"encoding/hex"
	"encoding/json"
	"fmt"
	"log"
	"os"
	"sync"
	"time"

	"github.com/go-zookeeper/zk"
	"github.com/typedid/uuid"
)

// ZKRootPath is the root path in Zookeeper for node registration.
const ZKRootPath = "/uuid_nodes"

// NodeAllocator assigns this process a stable 48-bit node identity for
// v1/v6 UUIDs, backed by Zookeeper. A recovered identity keeps the
// node field of generated UUIDs constant across restarts, which is what
// makes them traceable back to the instance that minted them.
type NodeAllocator struct {
	zkClient *zk.Conn // Zookeeper client connection
	service  string   // Service name (affects ZK node path)
	port     int      // Port (used to derive node uniqueness)

	node     [6]byte // allocated node identity
	lastTime int64   // last heartbeat timestamp in ms
}

// NodeInfo represents info stored for each worker in both ZK and cache file.
type NodeInfo struct {
	Node       string `json:"node"`        // Node identity, 12 hex digits
	LastTime   int64  `json:"last_time"`   // Last timestamp this node was active
	CreateTime int64  `json:"create_time"` // Creation timestamp
}

// NewNodeAllocator connects to Zookeeper and recovers or assigns a node
// identity for serviceName on port.
func NewNodeAllocator(zkServers []string, serviceName string, port int) (*NodeAllocator, error) {
	alloc := &NodeAllocator{
		service: serviceName,
		port:    port,
	}

	c, _, err := zk.Connect(zkServers, time.Second*5) // Connect to Zookeeper
	if err != nil {
		return nil, fmt.Errorf("connect zk failed: %v", err)
	}
	alloc.zkClient = c

	node, err := alloc.registerOrRecover() // Register or recover node identity
	if err != nil {
		return nil, err
	}

	alloc.node = node
	log.Printf("node allocator initialized with node: %x", node)

	// Periodically upload heartbeat and update state to Zookeeper and cache
	go alloc.scheduledUploadTime()
	return alloc, nil
}

// Node returns the allocated 48-bit identity, ready for
// Generator.SetNodeID.
func (a *NodeAllocator) Node() [6]byte {
	return a.node
}

// registerOrRecover registers this node to Zookeeper or recovers assignment from cache or ZK.
func (a *NodeAllocator) registerOrRecover() ([6]byte, error) {
	// Build the ZK service path: e.g., /uuid_nodes/serviceName
	servicePath := fmt.Sprintf("%s/%s", ZKRootPath, a.service)
	a.ensurePath(ZKRootPath)
	a.ensurePath(servicePath)

	nodeKey := fmt.Sprintf("%s/node-%d", servicePath, a.port) // Unique nodeKey per service+port

	var myNodeInfo NodeInfo
	var node [6]byte

	exists, _, err := a.zkClient.Exists(nodeKey)
	if err != nil {
		return node, fmt.Errorf("check node existence failed: %v", err)
	}

	if exists {
		// Attempt to recover the identity from the ZK node
		data, _, err := a.zkClient.Get(nodeKey)
		if err != nil {
			return node, fmt.Errorf("get node info failed: %v", err)
		}
		json.Unmarshal(data, &myNodeInfo)
		node, err = decodeNode(myNodeInfo.Node)
		if err != nil {
			return node, fmt.Errorf("corrupt node info in zk: %v", err)
		}

		currentTime := time.Now().UnixMilli()
		// Detect system clock rollback
		if currentTime < myNodeInfo.LastTime {
			return node, fmt.Errorf("clock moved backwards: %d < %d", currentTime, myNodeInfo.LastTime)
		}

		log.Printf("recover node: %x from zk", node)
	} else {
		// Not registered in ZK, try local cache first
		cachedInfo, err := a.loadLocalCache()
		if err == nil {
			node, err = decodeNode(cachedInfo.Node)
			if err != nil {
				return node, fmt.Errorf("corrupt node info in cache: %v", err)
			}
			// Check for clock rollback against cached time
			if time.Now().UnixMilli() < cachedInfo.LastTime {
				return node, fmt.Errorf("clock moved backwards: %d < %d", time.Now().UnixMilli(), cachedInfo.LastTime)
			}
			log.Printf("recover node: %x from local cache", node)
		} else {
			// Derive a fresh identity from service and port. The multicast
			// bit is set so it can never collide with a hardware address.
			node = deriveNode(a.service, a.port)
		}

		now := time.Now().UnixMilli()
		myNodeInfo = NodeInfo{
			Node:       hex.EncodeToString(node[:]),
			LastTime:   now,
			CreateTime: now,
		}
	}

	// Register or update node info in Zookeeper
	bytes, _ := json.Marshal(myNodeInfo)
	if exists {
		_, err = a.zkClient.Set(nodeKey, bytes, -1)
	} else {
		_, err = a.zkClient.Create(nodeKey, bytes, 0, zk.WorldACL(zk.PermAll))
	}
	if err != nil {
		return node, fmt.Errorf("register or update node info failed: %v", err)
	}

	// Save to a local cache file for local recovery
	a.saveLocalCache(myNodeInfo)
	return node, nil
}

// deriveNode packs the service hash and port into 48 bits with the
// multicast bit set.
func deriveNode(service string, port int) [6]byte {
	var h uint32
	for _, c := range service {
		h = h*31 + uint32(c)
	}
	return [6]byte{
		0x01,
		byte(h >> 16),
		byte(h >> 8),
		byte(h),
		byte(port >> 8),
		byte(port),
	}
}

func decodeNode(s string) ([6]byte, error) {
	var node [6]byte
	b, err := hex.DecodeString(s)
	if err != nil {
		return node, err
	}
	if len(b) != 6 {
		return node, fmt.Errorf("node is %d bytes, want 6", len(b))
	}
	copy(node[:], b)
	return node, nil
}

// scheduledUploadTime periodically updates this node's info in Zookeeper and the local cache.
func (a *NodeAllocator) scheduledUploadTime() {
	ticker := time.NewTicker(3 * time.Second)
	nodeKey := fmt.Sprintf("%s/%s/node-%d", ZKRootPath, a.service, a.port) // Key for this node in Zookeeper

	for range ticker.C {
		now := time.Now().UnixMilli()

		// If local time is less than lastTime, system clock went backwards! Alert here.
		if now < a.lastTime {
			log.Printf("Clock rollback detected during heartbeat! Local: %d, Last: %d", now, a.lastTime)
			continue
		}
		a.lastTime = now

		info := NodeInfo{
			Node:     hex.EncodeToString(a.node[:]),
			LastTime: now,
		}
		data, _ := json.Marshal(info)

		// Ignore errors, since Zookeeper may occasionally be unavailable
		a.zkClient.Set(nodeKey, data, -1)

		// Update local file cache as well
		a.saveLocalCache(info)
	}
}

// ensurePath creates a ZK path if needed.
func (a *NodeAllocator) ensurePath(path string) {
	exists, _, _ := a.zkClient.Exists(path)
	if !exists {
		// Create the path with open permissions if it doesn't exist yet.
		a.zkClient.Create(path, []byte{}, 0, zk.WorldACL(zk.PermAll))
	}
}

// saveLocalCache saves the given NodeInfo to a file for local state recovery.
func (a *NodeAllocator) saveLocalCache(info NodeInfo) {
	data, _ := json.Marshal(info)
	fileName := fmt.Sprintf(".uuid_node_cache_%d", a.port)
	os.WriteFile(fileName, data, 0644)
}

// loadLocalCache loads NodeInfo from the local cache file, if present.
func (a *NodeAllocator) loadLocalCache() (NodeInfo, error) {
	fileName := fmt.Sprintf(".uuid_node_cache_%d", a.port)
	data, err := os.ReadFile(fileName)
	if err != nil {
		return NodeInfo{}, err
	}
	var info NodeInfo
	err = json.Unmarshal(data, &info)
	return info, err
}

func main() {
	// NOTE: This code requires a local Zookeeper at localhost:2181 to run.
	// You can use Docker to start Zookeeper for local testing:
	// docker run --name some-zookeeper -p 2181:2181 -d zookeeper

	zkServers := []string{"127.0.0.1:2181"}

	// Allocate a node identity for a worker on port 8080
	alloc, err := NewNodeAllocator(zkServers, "order-service", 8080)
	if err != nil {
		log.Fatalf("Failed to init node allocator: %v", err)
	}

	gen := uuid.NewGenerator()
	gen.SetNodeID(alloc.Node())

	log.Println("Start generating time-based UUIDs...")

	var wg sync.WaitGroup
	// Launch 10 goroutines concurrently to generate UUIDs in parallel,
	// each generating 100 UUIDs
	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				u, err := gen.NewV6()
				if err != nil {
					log.Println(err)
				} else {
					fmt.Println(u)
				}
			}
		}()
	}
	wg.Wait()
	log.Println("Done.")
}
