// internal/bundle/readme.go
package bundle

const simpleReadme = `# Landing Page Export

## Files Included
- index.html - Your complete landing page

## Deployment Instructions

### Option 1: Upload to Web Host
1. Upload index.html to your web host via FTP or file manager
2. Access your site at your domain

### Option 2: Deploy to Netlify (Free)
1. Go to https://app.netlify.com/drop
2. Drag and drop this folder
3. Get instant live URL

### Option 3: Deploy to Vercel (Free)
1. Install Vercel CLI: npm i -g vercel
2. Run: vercel
3. Follow the prompts

### Option 4: GitHub Pages
1. Create a new GitHub repository
2. Upload index.html
3. Enable GitHub Pages in repository settings

### Preview Locally
Run ` + "`npm run serve`" + ` in this folder.
`

const simplePackageJSON = `{
  "name": "landing-page-export",
  "version": "1.0.0",
  "scripts": {
    "serve": "npx serve ."
  }
}
`

// assetFolderReadme is a fmt format: total size, HTML size, CSS size, asset
// count.
const assetFolderReadme = "# Landing Page - Asset Folder Export\n" + `
## Quick Start

This export contains your landing page as separate, organized files. You can:

1. **Open locally**: Double-click ` + "`index.html`" + ` to view in your browser
2. **Deploy to web**: Upload all files to your hosting provider
3. **Edit easily**: Modify ` + "`css/styles.css`" + ` to change styling

## File Structure

` + "```" + `
/
├── index.html          # Main page
├── css/
│   └── styles.css      # All styling
├── js/
│   └── main.js         # FAQ toggles (only when the FAQ is shown)
├── assets/
│   ├── images/         # Images (content-hashed filenames)
│   ├── videos/         # Video files
│   └── documents/      # PDFs and documents
└── manifest.json       # Asset slot to file mapping
` + "```" + `

## Deployment Options

### Option 1: Netlify Drop
1. Visit https://app.netlify.com/drop
2. Drag and drop this entire folder
3. Get instant live URL

### Option 2: Vercel
1. Install Vercel CLI: ` + "`npm i -g vercel`" + `
2. Navigate to this folder in terminal
3. Run ` + "`vercel`" + `

### Option 3: Traditional Web Host
1. Connect via FTP/SFTP
2. Upload all files keeping the folder structure
3. Access at your domain

### Option 4: GitHub Pages
1. Create a GitHub repository
2. Upload all files
3. Enable Pages in repository settings

## Technical Notes

- Asset filenames are content hashes, so they can be cached forever.
- The page carries a Content-Security-Policy meta tag.
- Images are lazy loaded.

## File Sizes

Total export size: ~%s
- HTML: ~%s
- CSS: ~%s
- Assets: %d files
`
