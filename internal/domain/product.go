package domain

import "time"

// Product representa a especificação de um smartphone do catálogo
type Product struct {
	ID         int64     `json:"id,omitempty"`
	Brand      string    `json:"brand"`
	Model      string    `json:"model"`
	Price      float64   `json:"price"`
	RAM        int       `json:"ram"`
	Storage    int       `json:"storage"`
	Battery    int       `json:"battery"`
	CameraMP   int       `json:"camera_mp"`
	OS         string    `json:"os"`
	LaunchDate string    `json:"launch_date"`
	CreatedAt  time.Time `json:"created_at,omitempty"`
}

// SpecOverrides contém os atributos alteráveis em uma simulação.
// Armazenamento não faz parte da simulação.
type SpecOverrides struct {
	Price    *float64 `json:"price,omitempty"`
	RAM      *int     `json:"ram,omitempty"`
	Battery  *int     `json:"battery,omitempty"`
	CameraMP *int     `json:"camera_mp,omitempty"`
}

// Apply retorna uma cópia do produto com as alterações aplicadas
func (o SpecOverrides) Apply(p Product) Product {
	if o.Price != nil {
		p.Price = *o.Price
	}
	if o.RAM != nil {
		p.RAM = *o.RAM
	}
	if o.Battery != nil {
		p.Battery = *o.Battery
	}
	if o.CameraMP != nil {
		p.CameraMP = *o.CameraMP
	}
	return p
}
