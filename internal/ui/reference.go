package ui

// referenceText is the read-only Markdown cheat sheet opened with ctrl+h from
// the explorer, rendered through the same preview pipeline as real documents.
const referenceText = `# Markdown Reference

## Headings

    # H1
    ## H2
    ### H3

Leave a blank line before each heading.

## Emphasis

*italic*, **bold**, ` + "`inline code`" + `

## Lists

- unordered item
- another item

1. ordered item
2. another item

## Links and Images

[link text](https://example.com)

![alt text](image.png)

Links need a URL; images need alt text.

## Code Blocks

    ` + "```go" + `
    fmt.Println("hello")
    ` + "```" + `

Leave a blank line before the opening fence and close every fence.

## Tables

    | Column | Column |
    | ------ | ------ |
    | cell   | cell   |

Table rows start with a pipe.

## Blockquotes

> quoted text

## Horizontal Rule

---
`
