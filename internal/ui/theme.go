package ui

// themeInitScript runs in <head> so the stored colour mode applies before
// first paint.
const themeInitScript = `(function(){
  var root=document.documentElement;
  var mode='auto';
  try { mode=localStorage.getItem('risk-ui-theme')||'auto'; } catch (_) {}
  if(mode!=='light'&&mode!=='dark'){ mode='auto'; }
  var dark=mode==='dark'||(mode==='auto'&&window.matchMedia('(prefers-color-scheme: dark)').matches);
  root.setAttribute('data-color-mode',mode);
  root.setAttribute('data-light-theme',dark?'dark':'light');
})();`

// themeBehaviorScript wires the light/dark toggle in the top bar.
const themeBehaviorScript = `(function(){
  var root=document.documentElement;
  var toggle=document.getElementById('theme-toggle');
  if(!toggle){ return; }
  function isDark(){ return root.getAttribute('data-light-theme')==='dark'; }
  function sync(){
    var dark=isDark();
    document.getElementById('theme-icon-sun').classList.toggle('is-hidden', dark);
    document.getElementById('theme-icon-moon').classList.toggle('is-hidden', !dark);
    toggle.setAttribute('aria-label', dark?'Switch to light theme':'Switch to dark theme');
  }
  toggle.addEventListener('click', function(){
    var next=isDark()?'light':'dark';
    root.setAttribute('data-color-mode',next);
    root.setAttribute('data-light-theme',next);
    try { localStorage.setItem('risk-ui-theme', next); } catch (_) {}
    sync();
  });
  sync();
})();`
