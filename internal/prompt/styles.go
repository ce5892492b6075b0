package prompt

// short style keys expanded to full style descriptions.
// Unknown keys pass through unchanged so custom styles still work.
var styleDescriptions = map[string]string{
	"photo":      "ultra realistic photograph, natural lighting, sharp focus",
	"cinematic":  "cinematic still, dramatic lighting, shallow depth of field, film grain",
	"anime":      "vibrant anime illustration, clean line art, cel shading",
	"watercolor": "soft watercolor painting, delicate brush strokes, paper texture",
	"oil":        "classical oil painting, rich textures, visible brushwork",
	"3d":         "polished 3D render, studio lighting, high detail",
	"pixel":      "retro pixel art, limited palette, crisp pixels",
	"sketch":     "detailed pencil sketch, cross hatching, monochrome",
	"flat":       "flat vector illustration, bold shapes, minimal shading",
	"neon":       "neon cyberpunk scene, glowing highlights, moody atmosphere",
}

// expands a short style key to its full description
func StyleDescription(key string) string {
	if desc, ok := styleDescriptions[key]; ok {
		return desc
	}

	return key
}
