package sprite

import (
	"fmt"
	"image"
	"image/draw"
	"image/gif"
	"io"

	_ "image/png" // 必加，否则 image: unknown format

	xdraw "golang.org/x/image/draw"
)

// DecodeGIF 取 GIF 的前 n 帧。每帧都合成到完整画布上 (GIF 的帧可能只是局部更新)
func DecodeGIF(r io.Reader, n int) ([]image.Image, error) {
	g, err := gif.DecodeAll(r)
	if err != nil {
		return nil, fmt.Errorf("decode gif: %w", err)
	}
	if len(g.Image) < n {
		return nil, fmt.Errorf("gif has %d frames, need %d", len(g.Image), n)
	}

	bounds := image.Rect(0, 0, g.Config.Width, g.Config.Height)
	if bounds.Empty() {
		bounds = g.Image[0].Bounds()
	}
	canvas := image.NewRGBA(bounds)

	frames := make([]image.Image, 0, n)
	for i := 0; i < n; i++ {
		src := g.Image[i]

		var disposal byte
		if i < len(g.Disposal) {
			disposal = g.Disposal[i]
		}
		var previous *image.RGBA
		if disposal == gif.DisposalPrevious {
			previous = clone(canvas)
		}

		draw.Draw(canvas, src.Bounds(), src, src.Bounds().Min, draw.Over)
		frames = append(frames, clone(canvas))

		// 按处置方式收拾画布，给下一帧用
		switch disposal {
		case gif.DisposalBackground:
			draw.Draw(canvas, src.Bounds(), image.Transparent, image.Point{}, draw.Src)
		case gif.DisposalPrevious:
			canvas = previous
		}
	}
	return frames, nil
}

// SliceStrip 把横向排列的精灵图切成 n 帧
func SliceStrip(img image.Image, n int) ([]image.Image, error) {
	b := img.Bounds()
	if n <= 0 || b.Dx()%n != 0 {
		return nil, fmt.Errorf("sheet width %d cannot be split into %d frames", b.Dx(), n)
	}

	w := b.Dx() / n
	frames := make([]image.Image, 0, n)
	for i := 0; i < n; i++ {
		rect := image.Rect(b.Min.X+i*w, b.Min.Y, b.Min.X+(i+1)*w, b.Max.Y)
		frame := image.NewRGBA(image.Rect(0, 0, w, b.Dy()))
		draw.Draw(frame, frame.Bounds(), img, rect.Min, draw.Src)
		frames = append(frames, frame)
	}
	return frames, nil
}

// Repeat 整段帧序列重复 times 次，times <= 1 时原样返回
func Repeat(frames []image.Image, times int) []image.Image {
	if times <= 1 {
		return frames
	}
	out := make([]image.Image, 0, len(frames)*times)
	for i := 0; i < times; i++ {
		out = append(out, frames...)
	}
	return out
}

// Scale 最近邻缩放到 w x h，像素风素材不能用插值
func Scale(img image.Image, w, h int) image.Image {
	b := img.Bounds()
	if b.Dx() == w && b.Dy() == h {
		return img
	}
	dst := image.NewRGBA(image.Rect(0, 0, w, h))
	xdraw.NearestNeighbor.Scale(dst, dst.Bounds(), img, b, xdraw.Src, nil)
	return dst
}

func clone(src *image.RGBA) *image.RGBA {
	dst := image.NewRGBA(src.Bounds())
	copy(dst.Pix, src.Pix)
	return dst
}
