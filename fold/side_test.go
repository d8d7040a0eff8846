package fold

import (
	"testing"

	"github.com/tsawler/plica/internal/imgutil"
	"github.com/tsawler/plica/model"
)

func TestAutoDetectSide(t *testing.T) {
	const w, h = 500, 200
	cfg := model.DefaultConfig()

	tests := []struct {
		name                string
		left, center, right uint8
		want                model.Side
	}{
		{"center much darker", 200, 80, 210, model.SideCenter},
		{"left darkest", 90, 150, 200, model.SideLeft},
		{"right darkest", 200, 150, 90, model.SideRight},
		{"outer strips tied", 150, 150, 150, model.SideCenter},
		{"near tie resolves center", 150, 200, 153, model.SideCenter},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			img := imgutil.Uniform(w, h, 255)
			imgutil.FillColumns(img, 0, w/5, tt.left)
			imgutil.FillColumns(img, w*2/5, w*3/5, tt.center)
			imgutil.FillColumns(img, w*4/5, w, tt.right)

			if got := AutoDetectSide(img, cfg); got != tt.want {
				t.Errorf("AutoDetectSide(%d, %d, %d) = %v, want %v",
					tt.left, tt.center, tt.right, got, tt.want)
			}
		})
	}
}
