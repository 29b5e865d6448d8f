package models

// IconTag identifica o ícone do serviço; a camada visual resolve o asset.
type IconTag string

const (
	IconScissors IconTag = "scissors"
	IconPalette  IconTag = "palette"
	IconSparkles IconTag = "sparkles"
	IconHand     IconTag = "hand"
	IconDroplets IconTag = "droplets"
	IconStar     IconTag = "star"
	IconCrown    IconTag = "crown"
	IconHeart    IconTag = "heart"
)

type Service struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Duration    string   `json:"duration"`
	Price       float64  `json:"price"`
	Icon        IconTag  `json:"icon"`
	Category    string   `json:"category"`
	Popular     bool     `json:"popular,omitempty"`
	Bonus       []string `json:"bonus,omitempty"`
}
