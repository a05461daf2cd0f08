// Package image565 provides the 16-bit packed color format used by the GC9A01A
// display controller and a frame buffer that stages pixels before they are
// pushed to the panel.
//
// A pixel is 5 bits of red, 6 bits of green and 5 bits of blue packed into a
// 16-bit word. On the wire and inside FrameBuffer the word is stored most
// significant byte first:
//
//	Color:  0xF800 (pure red)
//	Bytes:  0xF8 0x00
//
// This package provides:
//
// - Color: a packed RGB565 value that implements color.Color
// - Model: a color model converting standard Go colors to Color
// - Pack: conversion from any color.Color for either channel order
// - FrameBuffer: a draw.Image over a caller-provided byte slice
//
// Example usage:
//
//	buf := make([]byte, 240*240*2)
//	fb, err := image565.NewFrameBuffer(buf, 240, 240)
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	// Paint the background and a single pixel
//	fb.Clear(image565.Black)
//	fb.SetRGB565(120, 120, image565.New(0xFF, 0x80, 0x00))
//
//	// Use with standard Go image operations
//	draw.Draw(fb, fb.Bounds(), image.NewUniform(color.White), image.Point{}, draw.Src)
package image565
