// Package sprite implements a decoder for indexed-palette sprite sheets.
//
// A sheet is stored in two archive entries. The sheet's own data entry holds
// the raw palette indices of every sprite, back to back, prefixed with the
// offset of the sheet's header inside the archive-wide metadata entry
// (index.dat). The header carries the palette, and is followed by one small
// record per sprite with its placement offsets, dimensions and pixel layout.
//
// Sprite records are not indexed: locating sprite N means measuring sprites
// 0 through N-1 first. DecodeOne does exactly that. DecodeAll reads every
// sheet in an archive and uses the end of the data as the end of the sheet.
package sprite
