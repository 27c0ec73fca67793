package main

import (
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
)

type Main struct {
	Temp      float64 `json:"temp"`
	FeelsLike float64 `json:"feels_like"`
	Humidity  int     `json:"humidity"`
}

type Wind struct {
	Speed float64 `json:"speed"`
}

type Weather struct {
	Main        string `json:"main"`
	Description string `json:"description"`
}

type Clouds struct {
	All int `json:"all"`
}

type CurrentResponse struct {
	Dt      int64              `json:"dt"`
	Main    Main               `json:"main"`
	Wind    Wind               `json:"wind"`
	Weather []Weather          `json:"weather"`
	Clouds  Clouds             `json:"clouds"`
	Rain    map[string]float64 `json:"rain,omitempty"`
}

// Hourly rainfall in mm keyed by latitude rounded to two decimals. Anything
// not listed is dry.
var rainByLatitude = map[string]float64{
	"-6.79": 32.0, // Dar es Salaam: warning
	"-2.52": 12.5, // Mwanza: watch
	"-6.17": 4.0,  // Zanzibar City: light rain
}

func current(lat float64) CurrentResponse {
	resp := CurrentResponse{
		Dt:      time.Now().Unix(),
		Main:    Main{Temp: 27.5, FeelsLike: 30.1, Humidity: 74},
		Wind:    Wind{Speed: 3.6},
		Weather: []Weather{{Main: "Clouds", Description: "broken clouds"}},
		Clouds:  Clouds{All: 60},
	}

	if rain, ok := rainByLatitude[fmt.Sprintf("%.2f", lat)]; ok {
		resp.Rain = map[string]float64{"1h": rain}
		resp.Weather = []Weather{{Main: "Rain", Description: "heavy intensity rain"}}
		resp.Clouds.All = 100
		resp.Main.Humidity = 95
	}
	return resp
}

func main() {
	gin.SetMode(gin.ReleaseMode)
	r := gin.Default()

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	r.GET("/data/2.5/weather", func(c *gin.Context) {
		key := c.Query("appid")
		if key == "" || key == "invalid" {
			c.JSON(http.StatusUnauthorized, gin.H{"cod": 401, "message": "Invalid API key"})
			return
		}

		lat, latErr := strconv.ParseFloat(c.Query("lat"), 64)
		_, lonErr := strconv.ParseFloat(c.Query("lon"), 64)
		if latErr != nil || lonErr != nil {
			c.JSON(http.StatusBadRequest, gin.H{"cod": "400", "message": "wrong latitude or longitude"})
			return
		}

		if os.Getenv("MOCK_OUTAGE") == "true" {
			c.JSON(http.StatusInternalServerError, gin.H{"cod": 500, "message": "Internal error"})
			return
		}

		c.JSON(http.StatusOK, current(lat))
	})

	port := os.Getenv("PORT")
	if port == "" {
		port = "8081"
	}

	slog.Info("Mock OpenWeather server starting", "port", port)
	if err := r.Run(":" + port); err != nil {
		slog.Error("Failed to start server", "error", err)
		os.Exit(1)
	}
}
