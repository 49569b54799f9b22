package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/fbngrm/anki-video/pkg/audio"
	"github.com/fbngrm/anki-video/pkg/card"
	"github.com/fbngrm/anki-video/pkg/openai"
	"github.com/fbngrm/anki-video/pkg/transcript"
	"github.com/fbngrm/anki-video/pkg/video"
)

var question string
var answer string
var tsvPath string
var compilation bool
var outDir string
var audioDir string
var publicDir string
var dataPath string
var prefix string
var voice string
var provider string

func main() {
	apiKey := os.Getenv("OPENAI_API_KEY")
	if apiKey == "" {
		log.Fatal("Environment variable OPENAI_API_KEY is not set")
	}

	flag.StringVar(&question, "q", "", "flashcard question")
	flag.StringVar(&answer, "a", "", "flashcard answer")
	flag.StringVar(&tsvPath, "tsv", "", "path to tsv file with flashcards")
	flag.BoolVar(&compilation, "c", false, "generate compilation data from tsv")
	flag.StringVar(&outDir, "out", "./video-assets", "output dir for single card data")
	flag.StringVar(&audioDir, "audio-dir", "./audio_output", "dir with synthesized audio files")
	flag.StringVar(&publicDir, "public-dir", filepath.Join("video-generator", "public"), "renderer public dir")
	flag.StringVar(&dataPath, "data", filepath.Join("video-generator", "src", "compilation.json"), "compilation data output file")
	flag.StringVar(&prefix, "prefix", "karte", "audio filename prefix")
	flag.StringVar(&voice, "voice", "nova", "tts voice")
	flag.StringVar(&provider, "tts", "openai", "tts provider, openai or gcp")
	flag.Parse()

	cwd, err := os.Getwd()
	if err != nil {
		fmt.Println(err)
		os.Exit(1)
	}

	// we cache responses from the openai chat api
	cacheDir := filepath.Join(cwd, "data", "cache")
	explainer, err := openai.NewClient(apiKey, openai.NewCache(cacheDir))
	if err != nil {
		fmt.Printf("could not init openai client: %v\n", err)
		os.Exit(1)
	}

	var tts audio.Synthesizer
	switch provider {
	case "openai":
		tts = audio.NewOpenAIClient(apiKey, voice)
	case "gcp":
		tts = &audio.GCPClient{Voice: voice}
	default:
		log.Fatalf("unknown tts provider: %s", provider)
	}

	generator := &audio.Generator{
		Explainer: explainer,
		TTS:       tts,
	}
	recognizer := &transcript.GCPClient{}

	ctx := context.Background()

	switch {
	case compilation && tsvPath != "":
		cards, err := card.Load(tsvPath)
		if err != nil {
			log.Fatal(err)
		}
		pipeline := &video.Pipeline{
			Synthesizer: generator,
			Builder: &video.Builder{
				Recognizer:    recognizer,
				Probe:         audio.Duration,
				PaddingFrames: video.CompilationPaddingFrames,
			},
			AudioDir:  audioDir,
			PublicDir: publicDir,
			Prefix:    prefix,
		}
		if err := pipeline.Compile(ctx, cards, dataPath); err != nil {
			log.Fatal(err)
		}
	case tsvPath != "":
		cards, err := card.Load(tsvPath)
		if err != nil {
			log.Fatal(err)
		}
		if len(cards) == 0 {
			log.Fatal("no valid cards in tsv file")
		}
		pipeline := singleCardPipeline(generator, recognizer)
		if _, err := pipeline.GenerateCard(ctx, cards[0].Question, cards[0].Answer, outDir); err != nil {
			log.Fatal(err)
		}
	case question != "" && answer != "":
		pipeline := singleCardPipeline(generator, recognizer)
		if _, err := pipeline.GenerateCard(ctx, question, answer, outDir); err != nil {
			log.Fatal(err)
		}
	default:
		flag.Usage()
		os.Exit(1)
	}
}

func singleCardPipeline(generator *audio.Generator, recognizer video.Recognizer) *video.Pipeline {
	return &video.Pipeline{
		Synthesizer: generator,
		Builder: &video.Builder{
			Recognizer:    recognizer,
			Probe:         audio.Duration,
			PaddingFrames: video.DefaultPaddingFrames,
		},
	}
}
