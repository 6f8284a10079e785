package sprite

import (
	"fmt"
	"image"
	"io/fs"
	"path"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"

	"deskpet/config"
	"deskpet/internal/entity"
)

// LoadSheets 读取全部动画的帧，并缩放到窗口大小。任何一个素材缺失都算失败
func LoadSheets(fsys fs.FS, assets config.AssetsConfig, w, h int) (map[entity.Animation][]image.Image, error) {
	sheets := make(map[entity.Animation][]image.Image, len(entity.Animations))

	for _, anim := range entity.Animations {
		sheet, ok := assets.Animations[string(anim)]
		if !ok {
			return nil, fmt.Errorf("animation %q not configured", anim)
		}

		frames, err := loadSheet(fsys, sheet)
		if err != nil {
			return nil, fmt.Errorf("load %s (%s): %w", anim, sheet.File, err)
		}

		for i, f := range frames {
			frames[i] = Scale(f, w, h)
		}
		sheets[anim] = Repeat(frames, sheet.Repeat)
	}
	return sheets, nil
}

func loadSheet(fsys fs.FS, sheet config.SheetConfig) ([]image.Image, error) {
	file, err := fsys.Open(sheet.File)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	if strings.EqualFold(path.Ext(sheet.File), ".gif") {
		return DecodeGIF(file, sheet.Frames)
	}

	img, _, err := image.Decode(file)
	if err != nil {
		return nil, fmt.Errorf("decode image: %w", err)
	}
	return SliceStrip(img, sheet.Frames)
}

// Set 加载完成后的动画帧，之后只读
type Set struct {
	frames map[entity.Animation][]*ebiten.Image
}

// NewSet 把解码好的帧上传成 ebiten 图片
func NewSet(sheets map[entity.Animation][]image.Image) *Set {
	s := &Set{frames: make(map[entity.Animation][]*ebiten.Image, len(sheets))}
	for anim, imgs := range sheets {
		frames := make([]*ebiten.Image, len(imgs))
		for i, img := range imgs {
			frames[i] = ebiten.NewImageFromImage(img)
		}
		s.frames[anim] = frames
	}
	return s
}

// FrameCount 动画帧数
func (s *Set) FrameCount(anim entity.Animation) int {
	return len(s.frames[anim])
}

// Frame 取第 i 帧，i 会对帧数取模
func (s *Set) Frame(anim entity.Animation, i int) *ebiten.Image {
	frames := s.frames[anim]
	if len(frames) == 0 {
		return nil
	}
	return frames[i%len(frames)]
}
