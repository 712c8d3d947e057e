package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"log"
	"math/rand"
	"net/http"
	"sync"
	"time"
)

var maxEquipment int = 1000
var readingsPerEquipment int = 20
var httpHostPort string = "127.0.0.1:1080"

var rnd *rand.Rand = rand.New(rand.NewSource(time.Now().UnixNano()))

type equipmentRequest struct {
	Name     string   `json:"name"`
	Category string   `json:"category"`
	MinTempC *float64 `json:"min_temp_c"`
	MaxTempC *float64 `json:"max_temp_c"`
	Active   bool     `json:"active"`
}

type equipmentResponse struct {
	ID string `json:"ID"`
}

type readingRequest struct {
	ReadingDate  string  `json:"reading_date"`
	ReadingTime  string  `json:"reading_time"`
	TemperatureC float64 `json:"temperature_c"`
	LoggedBy     string  `json:"logged_by"`
}

func main() {
	resp, err := http.Get(fmt.Sprintf("http://%s/healthz", httpHostPort))
	if err != nil {
		log.Fatal("Failed to connect to HTTP server:", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		log.Fatal("HTTP server not available")
	}

	fmt.Printf("http server verified\n")

	minTemp, maxTemp := 0.0, 5.0
	equipmentIDs := make([]string, 0, maxEquipment)
	for i := 0; i < maxEquipment; i++ {
		body, _ := json.Marshal(equipmentRequest{
			Name:     fmt.Sprintf("Fridge %04d", i),
			Category: "refrigeration",
			MinTempC: &minTemp,
			MaxTempC: &maxTemp,
			Active:   true,
		})
		r, err := http.Post(fmt.Sprintf("http://%s/equipment", httpHostPort), "application/json", bytes.NewReader(body))
		if err != nil {
			log.Fatal("Failed to create equipment:", err)
		}
		var created equipmentResponse
		if err := json.NewDecoder(r.Body).Decode(&created); err != nil {
			log.Fatal("Failed to decode equipment response:", err)
		}
		r.Body.Close()
		equipmentIDs = append(equipmentIDs, created.ID)
	}

	fmt.Printf("created %v equipment\n", len(equipmentIDs))

	start := time.Now()
	var wg sync.WaitGroup
	var posted, failed int64
	var mu sync.Mutex

	for _, id := range equipmentIDs {
		wg.Add(1)
		go func(equipmentID string) {
			defer wg.Done()
			day := time.Now()
			for i := 0; i < readingsPerEquipment; i++ {
				body, _ := json.Marshal(readingRequest{
					ReadingDate:  day.Format("2006-01-02"),
					ReadingTime:  fmt.Sprintf("%02d:%02d", rnd.Intn(24), rnd.Intn(60)),
					TemperatureC: -2 + rnd.Float64()*10,
					LoggedBy:     "benchmark",
				})
				r, err := http.Post(
					fmt.Sprintf("http://%s/equipment/%s/readings", httpHostPort, equipmentID),
					"application/json", bytes.NewReader(body))
				mu.Lock()
				if err != nil || r.StatusCode != http.StatusOK {
					failed++
				} else {
					posted++
				}
				mu.Unlock()
				if r != nil {
					r.Body.Close()
				}
			}
		}(id)
	}
	wg.Wait()

	fmt.Printf("posted %v readings (%v failed) in %v\n", posted, failed, time.Since(start))

	statsStart := time.Now()
	for _, id := range equipmentIDs[:min(50, len(equipmentIDs))] {
		r, err := http.Get(fmt.Sprintf("http://%s/equipment/%s/statistics?window=24h", httpHostPort, id))
		if err != nil || r.StatusCode != http.StatusOK {
			log.Fatal("Failed to fetch statistics for ", id)
		}
		r.Body.Close()
	}
	fmt.Printf("fetched 50 statistics snapshots in %v\n", time.Since(statsStart))
}
