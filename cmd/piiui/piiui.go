package main

// Graphical front end for the pii watcher

import (
	"errors"
	"fmt"
	"image/color"
	"path/filepath"
	"strconv"
	"time"
	"unicode"

	"gopkg.in/ini.v1"

	"golang.org/x/image/font/basicfont"

	"github.com/anthonynsimon/bild/imgio"
	"github.com/anthonynsimon/bild/transform"
	"github.com/gopxl/pixel/v2"
	"github.com/gopxl/pixel/v2/backends/opengl"
	"github.com/gopxl/pixel/v2/ext/text"
	"go.uber.org/zap"

	"piidump/pii_watch"
	"piidump/utils"
)

func solid_rect_sprite(rect pixel.Rect, colour color.RGBA) *pixel.Sprite {
	pd := pixel.MakePictureData(rect)
	for i := range pd.Pix {
		pd.Pix[i] = colour
	}
	return pixel.NewSprite(pd, pd.Bounds())
}

// color_from_string converts an ini file colour string (e.g. "R255g128b0") into a color.RGBA
// the alpha part of RGBA just gets set to 0xff (full opacity) if omitted
// (r, g, and b get set to 0 if omitted, which means "g42" or even an empty string is technically a valid color string, but please don't do that)
func color_from_string(str string) (color.RGBA, error) {
	out := color.RGBA{0, 0, 0, 0xFF}

	name := rune(0)
	numstr := ""
	for _, r := range str + "!" { // +"!" is an evil way to make sure the final colour index gets processed.
		if unicode.IsDigit(r) {
			numstr += string(r)
		} else {
			if name != 0 {
				number, _ := strconv.Atoi(numstr)
				if number > 255 {
					number = 255
				}
				switch name {
				case 'r', 'R':
					out.R = uint8(number)
				case 'g', 'G':
					out.G = uint8(number)
				case 'b', 'B':
					out.B = uint8(number)
				case 'a', 'A':
					out.A = uint8(number)
				default:
					return out, errors.New("Unexpected colour index (not 'r', 'b' or 'g'): " + string(name))
				}
				numstr = ""
			}
			name = r
		}
	}
	return out, nil
}

// clean cleans a slice (i.e. throws away anything that is inaccessible but still in the underlying array, allowing GC to happen)
// This does copy the part of the slice that should remain.
func clean[T any](in []T) []T {
	out := make([]T, len(in))
	copy(out, in)
	return out
}

// sprite_loader loads and caches species sprites from a local directory.
// Sprites are resized to a fixed square so differently-sized source images
// don't wreck the layout.
type sprite_loader struct {
	dir   string
	size  int
	cache map[string]*pixel.Sprite
}

func (sl *sprite_loader) load(id string) *pixel.Sprite {
	if sl.dir == "" || id == "" {
		return nil
	}
	if sprite, ok := sl.cache[id]; ok {
		return sprite
	}

	img, err := imgio.Open(filepath.Join(sl.dir, id+".png"))
	if err != nil {
		// Missing sprites aren't worth any fuss - remember the failure so we
		// don't hit the disk every frame.
		sl.cache[id] = nil
		return nil
	}

	resized := transform.Resize(img, sl.size, sl.size, transform.Linear)
	pd := pixel.PictureDataFromImage(resized)
	sprite := pixel.NewSprite(pd, pd.Bounds())
	sl.cache[id] = sprite
	return sprite
}

func main() {
	// OpenGL must have the main thread
	opengl.Run(run)
}

func run() {
	// superconstants
	const TEXT_LINES = 3
	const LINE_HEIGHT = 13 // because hard-coded basicfont.Face7x13.

	const TEXT_HEIGHT = (TEXT_LINES + 1) * LINE_HEIGHT // 3 lines of text plus a gap
	const TEXT_H_OFFSET = LINE_HEIGHT                  // Pixel2 bases text drawing from the bottom of the top line

	// Constants from config file.  These are reasonable default values.
	cfg := map[string]float64{
		"W": 320, "H": 240,
		"NOTE_DURATION": 15,    // How long a text blob may stay on screen before it starts scrolling off, in seconds
		"SCROLL_SPEED":  100.0, // in pixels per second
		"X_BORDER":      10, "Y_BORDER": 10,
		"SPRITE_SIZE": 3 * LINE_HEIGHT,
	}
	colour := map[string]color.RGBA{
		"BACKGROUND": color.RGBA{0, 0, 0, 0xFF},
		"RECTANGLE":  color.RGBA{0, 0, 0xFF, 0xFF},
		"TEXT":       color.RGBA{0xFF, 0xFF, 0xFF, 0xFF},
	}
	sprite_dir := ""
	ini_data, err := ini.Load(utils.INI_FILE)
	if err == nil {
		sec := ini_data.Section("ui")
		for k := range cfg {
			if sec.HasKey(k) {
				f, err := sec.Key(k).Float64()
				if err == nil {
					cfg[k] = f
				}
			}
		}

		for k := range colour {
			if sec.HasKey(k + "_COLOUR") {
				col, err := color_from_string(sec.Key(k + "_COLOUR").String())
				if err != nil {
					fmt.Println(err)
				} else {
					colour[k] = col
				}
			}
		}

		sprite_dir = sec.Key("SPRITE_DIR").String()
	}

	wcfg := opengl.WindowConfig{
		Title:  "Pii notifications",
		Bounds: pixel.R(0, 0, cfg["W"], cfg["H"]),
		VSync:  true,
	}
	win, err := opengl.NewWindow(wcfg)
	if err != nil {
		panic(err)
	}
	defer win.Destroy()

	logger, err := zap.NewDevelopment()
	if err != nil {
		panic(err)
	}
	defer logger.Sync()

	sprites := &sprite_loader{dir: sprite_dir, size: int(cfg["SPRITE_SIZE"]), cache: map[string]*pixel.Sprite{}}

	type blob struct {
		text   *text.Text
		sprite *pixel.Sprite
	}

	atlas := text.NewAtlas(basicfont.Face7x13, text.ASCII)
	blobs := []blob{}
	notifications := make(chan *pii_watch.Notification)
	expired := make(chan bool)
	watcher := pii_watch.New_watcher(utils.Get_savefile_dir(), logger)
	err = watcher.Start_watching(notifications)
	if err != nil {
		fmt.Println(err)
	}
	defer watcher.Stop_watching() // somewhat unnecessary since there is not (yet) any quit function other than CTRL-C

	// Gap between two text blocks is a single LINE_HEIGHT
	// To have a proper border, background rectangle is LINE_HEIGHT/2 taller than this, centred so that there is LINE_HEIGHT/4 of rectangle above and below the text
	bgsprite := solid_rect_sprite(pixel.Rect{pixel.V(0, 0), pixel.V(cfg["W"]-cfg["X_BORDER"], TEXT_HEIGHT-LINE_HEIGHT/2)}, colour["RECTANGLE"])

	old_blobs := 0        // number of text blobs that need to be scrolled up into oblivion (does not count partially scrolled)
	current_scroll := 0.0 // in pixels, positive number

	old_time := time.Now()
	for !win.Closed() {
		new_time := time.Now()
		tick := new_time.Sub(old_time)
		old_time = new_time

		for current_scroll >= 1 {
			// A text blob has scrolled off the top of the screen
			current_scroll -= 1
			blobs = clean(blobs[1:])
			old_blobs -= 1
		}
		if old_blobs >= 1 {
			// at least one text blob is too old, so scrolling should be happening
			current_scroll += tick.Seconds() * cfg["SCROLL_SPEED"] / float64(TEXT_HEIGHT)
		}

		select {

		case n := <-notifications:
			note_text := text.New(pixel.V(0, 0), atlas)
			note_text.Color = colour["TEXT"]
			fmt.Fprintln(note_text, n.Name)
			fmt.Fprintln(note_text, n.Desc)
			fmt.Fprintln(note_text, "Category:", n.Category)
			blobs = append(blobs, blob{note_text, sprites.load(n.Sprite)})

			time.AfterFunc(time.Duration(cfg["NOTE_DURATION"]*float64(time.Second)), // UGH!!!!
				func() { expired <- true })

		case <-expired:
			old_blobs += 1

		default:
			// DRAWING STARTS HERE

			win.Clear(colour["BACKGROUND"])
			y_base := cfg["H"] - cfg["Y_BORDER"] + current_scroll*float64(TEXT_HEIGHT)
			for i, b := range blobs {
				y_base_i := y_base - float64(i*TEXT_HEIGHT)
				bgsprite.Draw(win, pixel.IM.Moved(pixel.V(cfg["W"]/2, y_base_i-TEXT_HEIGHT/2+LINE_HEIGHT/4)))

				text_x := cfg["X_BORDER"]
				if b.sprite != nil {
					half := cfg["SPRITE_SIZE"] / 2
					b.sprite.Draw(win, pixel.IM.Moved(pixel.V(cfg["X_BORDER"]+half, y_base_i-TEXT_HEIGHT/2+LINE_HEIGHT/4)))
					text_x += cfg["SPRITE_SIZE"] + LINE_HEIGHT/2
				}
				b.text.Draw(win, pixel.IM.Moved(pixel.V(text_x, y_base_i-TEXT_H_OFFSET)))
			}
			win.Update()

			// DRAWING ENDS HERE
		}
	}
}
