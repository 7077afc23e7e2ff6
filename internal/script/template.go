package script

import "strings"

type Bucket string

const (
	BucketTechnology Bucket = "tecnologia"
	BucketPolitics   Bucket = "politica"
	BucketDefault    Bucket = "geral"
)

// ImagePrompts is shared by every bucket; prompt i pairs with caption i.
var ImagePrompts = [PanelCount]string{
	"Wide establishing shot of the main scene, comic book style, dramatic lighting",
	"Close-up of key elements, detailed illustration, dynamic angle",
	"Action scene showing the main event, energetic composition",
	"Group of people reacting, varied expressions, comic art style",
	"Dramatic moment of revelation, intense atmosphere",
	"Final scene suggesting future implications, hopeful or mysterious tone",
}

var captions = map[Bucket][PanelCount]string{
	BucketTechnology: {
		"Cientistas fazem descoberta revolucionária em laboratório",
		"A nova tecnologia promete transformar o cotidiano",
		"Primeiros testes mostram resultados impressionantes",
		"Especialistas debatem os impactos da inovação",
		"Empresas já demonstram interesse na novidade",
		"O futuro pode estar mais próximo do que imaginamos",
	},
	BucketPolitics: {
		"Autoridades se reúnem para importante decisão",
		"Discussões intensas marcam o encontro",
		"Propostas são apresentadas e debatidas",
		"População acompanha atentamente os desdobramentos",
		"Votação define os rumos da questão",
		"Resultados geram reações diversas na sociedade",
	},
	BucketDefault: {
		"O dia começa com uma notícia surpreendente",
		"Detalhes começam a emergir sobre o acontecimento",
		"Testemunhas relatam o que presenciaram",
		"Autoridades investigam a situação",
		"Especialistas analisam as implicações",
		"A história continua a se desenvolver",
	},
}

// Classify picks the narrative bucket by case-insensitive keyword, in order:
// technology first, then politics, else the default bucket.
func Classify(title string) Bucket {
	t := strings.ToLower(title)

	switch {
	case strings.Contains(t, "tecnologia"):
		return BucketTechnology
	case strings.Contains(t, "política"):
		return BucketPolitics
	default:
		return BucketDefault
	}
}

// Captions returns the six captions of a bucket; unknown buckets get the default.
func Captions(b Bucket) [PanelCount]string {
	c, ok := captions[b]
	if !ok {
		return captions[BucketDefault]
	}
	return c
}

// Generate builds the six panels for title. It never fails.
func Generate(title string) []Panel {
	return Build(Captions(Classify(title)))
}

// Build pairs caption i with ImagePrompts[i].
func Build(caps [PanelCount]string) []Panel {
	panels := make([]Panel, PanelCount)
	for i := range panels {
		panels[i] = Panel{
			Index:       i + 1,
			Caption:     caps[i],
			ImagePrompt: ImagePrompts[i],
		}
	}

	return panels
}
