/*
Control sequences are how a text stream asks a terminal to change colors,
move the cursor or clear the screen instead of printing characters.

Most of them begin with the escape character (0x1B), so they are often called
escape codes. The window layer understands a small ECMA-48 subset embedded in
otherwise plain text:

  - ESC [ n;...;n m   Select Graphic Rendition: colors 30-37/39, 40-47/49,
    bold (1), dim (2), normal intensity (22), reset (0)
  - ESC [ row;col H   Cursor Position, zero-based window coordinates
  - ESC [ n J         Erase in Display, only n = 2 (whole window)
  - ESC ( F c ESC ( F a single DEC special graphics character c between two
    character set designations, drawn as a box-drawing glyph

Anything else starting with ESC is shown literally, the ESC itself underlined.
*/
package sequences
